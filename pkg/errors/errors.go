// Package errors: 트렌딩 분석 서비스 전체에서 사용되는 에러 타입들을 정의한다.
// 표준 Go 에러 스타일(Unwrap 지원)을 따른다.
package errors

import "fmt"

// APIError: 외부 데이터 제공자(YouTube Data API) 호출 중 발생한 에러
type APIError struct {
	Operation  string // 수행 중이던 API 작업
	StatusCode int    // HTTP 상태 코드 (0이면 네트워크 오류)
	Detail     string // 제공자가 내려준 상세 메시지 (없으면 빈 문자열)
	Err        error  // 원인 에러
}

func (e APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("provider error operation=%s status=%d: %s", e.Operation, e.StatusCode, e.Detail)
	}
	if e.Err == nil {
		return fmt.Sprintf("provider error operation=%s status=%d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("provider error operation=%s status=%d: %v", e.Operation, e.StatusCode, e.Err)
}

func (e APIError) Unwrap() error { return e.Err }

// NewAPIError: 제공자 API 에러를 생성한다.
func NewAPIError(operation string, statusCode int, detail string, cause error) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: statusCode,
		Detail:     detail,
		Err:        cause,
	}
}

// CacheError: Valkey 캐시/저장소 작업 중 발생한 에러
type CacheError struct {
	Message   string // 사람이 읽는 설명
	Operation string // get, set, delete 등
	Key       string // 캐시 키
	Err       error  // 원인 에러
}

func (e CacheError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s operation=%s key=%s", e.Message, e.Operation, e.Key)
	}
	return fmt.Sprintf("%s operation=%s key=%s: %v", e.Message, e.Operation, e.Key, e.Err)
}

func (e CacheError) Unwrap() error { return e.Err }

// NewCacheError: 캐시 에러를 생성한다.
func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		Message:   message,
		Operation: operation,
		Key:       key,
		Err:       cause,
	}
}

// ValidationError: 입력 검증 실패 에러 (잘못된 region, limit, 날짜 형식 등)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation error field=%s: %s", e.Field, e.Message)
}

// NewValidationError: 검증 에러를 생성한다.
func NewValidationError(message, field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ServiceError: 내부 서비스 로직 에러
type ServiceError struct {
	Service   string // 서비스 이름
	Operation string // 작업 이름
	Err       error  // 원인 에러
}

func (e ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("service error service=%s operation=%s", e.Service, e.Operation)
	}
	return fmt.Sprintf("service error service=%s operation=%s: %v", e.Service, e.Operation, e.Err)
}

func (e ServiceError) Unwrap() error { return e.Err }

// NewServiceError: 서비스 에러를 생성한다.
func NewServiceError(service, operation string, cause error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       cause,
	}
}
