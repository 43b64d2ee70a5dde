package util

import (
	"regexp"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// DatePart: ISO-8601 타임스탬프에서 날짜 부분(YYYY-MM-DD)만 잘라 반환한다.
// 형식이 고정폭이므로 앞 10글자를 그대로 사용한다.
func DatePart(timestamp string) string {
	if len(timestamp) < 10 {
		return ""
	}
	return timestamp[:10]
}

// IsValidDate: 문자열이 YYYY-MM-DD 형식의 유효한 날짜인지 확인합니다.
func IsValidDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// DaysSinceDate: 주어진 날짜(YYYY-MM-DD)로부터 기준 시각까지 경과한 일수를 반올림하여 반환한다.
// 날짜가 비어있거나 파싱할 수 없으면 -1을 반환한다.
func DaysSinceDate(date string, now time.Time) int {
	if date == "" {
		return -1
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return -1
	}

	diff := now.Sub(parsed).Hours() / 24
	return int(RoundToInt64(diff))
}

// ParseISODuration: ISO-8601 기간 문자열(PT15M33S 등)을 초 단위로 변환합니다.
// 형식이 맞지 않으면 0을 반환한다.
func ParseISODuration(duration string) int64 {
	if duration == "" {
		return 0
	}

	match := isoDurationRegex.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}

	parse := func(s string) int64 {
		if s == "" {
			return 0
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}

	hours := parse(match[1])
	minutes := parse(match[2])
	seconds := parse(match[3])
	return hours*3600 + minutes*60 + seconds
}
