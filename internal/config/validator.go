package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/health-panel/internal/pkg/errors"
	"github.com/darkkaiser/health-panel/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 유효성 검사 태그가 등록된 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름이 나오도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	register := func(tag string, fn func(string) error) {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String()) == nil
		})
		if err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	register("cors_origin", validation.ValidateCORSOrigin)
	register("percent_text", validation.ValidatePercentText)
	register("latency_text", validation.ValidateLatencyText)
	register("image_url", validation.ValidateImageURL)

	return v
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 오류를 사용자 친화적인 도메인 에러로 변환합니다.
// fields가 주어지면 해당 필드만 부분 검증합니다.
func checkStruct(v *validator.Validate, s any, contextName string, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.StructPartial(s, fields...)
	} else {
		err = v.Struct(s)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	return newFieldError(contextName, validationErrors[0])
}

func newFieldError(contextName string, fe validator.FieldError) error {
	switch fe.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")

	case "TLSCertFile", "TLSKeyFile":
		key, label := "tls_cert_file", "TLS 인증서 파일"
		if fe.StructField() == "TLSKeyFile" {
			key, label = "tls_key_file", "TLS 키 파일"
		}
		switch fe.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 경로(%s)는 필수입니다", label, key))
		case "file":
			return apperrors.New(apperrors.NotFound, fmt.Sprintf("지정된 %s(%s)을 찾을 수 없습니다: '%v'", label, key, fe.Value()))
		}

	case "AllowOrigins":
		if fe.Tag() == "min" {
			return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
		}

	case "RequestsPerSecond":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("초당 허용 요청 수(requests_per_second)는 1 이상이어야 합니다: '%v'", fe.Value()))

	case "Burst":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("순간 최대 요청 수(burst)는 초당 허용 요청 수(requests_per_second) 이상이어야 합니다: '%v'", fe.Value()))

	case "Services":
		switch fe.Tag() {
		case "min":
			return apperrors.New(apperrors.InvalidInput, "패널에는 최소 1개 이상의 서비스(services)가 있어야 합니다")
		case "unique":
			return apperrors.New(apperrors.Conflict, "패널 서비스 목록 내에 중복된 서비스명(name)이 존재합니다 (설정 값을 확인해주세요)")
		}

	case "Name":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 서비스명(name)이 비어있습니다 (위치: %s)", contextName, fe.Namespace()))

	case "AggregateHealth":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("전체 상태 지표(aggregate_health)는 0에서 100 사이의 값이어야 합니다: '%v'", fe.Value()))
	}

	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "percent_text":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("가동률(uptime_percentage) 형식이 올바르지 않습니다: '%v' (예: 99.4%%)", fe.Value()))
	case "latency_text":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지연 시간(latency) 형식이 올바르지 않습니다: '%v' (예: 108ms)", fe.Value()))
	case "image_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("오버레이 이미지 주소(overlay_image_url)가 올바르지 않습니다: '%v'", fe.Value()))
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 필수 설정(%s)이 비어있습니다", contextName, fe.Field()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}
