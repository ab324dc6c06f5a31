package parser

import (
	"strconv"
	"strings"
	"time"
)

// EmpIDWidth 사원번호 최소 자릿수 (미만이면 앞자리 0 채움)
const EmpIDWidth = 4

// ToISODate 셀 값을 YYYY-MM-DD 로 정규화
// YYYYMMDD(8자리), YYMMDD(6자리), YYYY-MM-DD, 소수점 붙은 숫자 표현을 허용한다.
// 달력 범위를 벗어나면 실패. 실패는 ("", false) 로 보고하고 절대 panic 하지 않는다.
func ToISODate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	// 날짜+시각 문자열이면 날짜 부분만 사용
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}

	if len(s) == 10 && s[4] == '-' && s[7] == '-' {
		return checkCalendar(s)
	}

	// 숫자형 표현: "19800101", "19800101.0", "800101"
	digits := s
	if strings.Contains(digits, ".") {
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return "", false
		}
		digits = strconv.FormatInt(int64(f), 10)
	}
	if !isDigits(digits) {
		return "", false
	}

	switch len(digits) {
	case 8: // YYYYMMDD
		return checkCalendar(digits[:4] + "-" + digits[4:6] + "-" + digits[6:8])
	case 6: // YYMMDD: 50 초과는 19xx, 이하는 20xx
		century := "20"
		if yy, _ := strconv.Atoi(digits[:2]); yy > 50 {
			century = "19"
		}
		return checkCalendar(century + digits[:2] + "-" + digits[2:4] + "-" + digits[4:6])
	}
	return "", false
}

func checkCalendar(iso string) (string, bool) {
	if _, err := time.Parse("2006-01-02", iso); err != nil {
		return "", false
	}
	return iso, true
}

// ToNumber 셀 값을 숫자로 정규화
// 천단위 콤마를 제거한다. "-" 단독 또는 공백은 명시적 null (nil, true).
// 숫자가 아닌 텍스트는 실패 (nil, false).
func ToNumber(raw string) (*float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return nil, true
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// ToEmpID 사원번호를 문자열로 정규화
// 숫자형("725", "2120.0")은 정수 문자열로 바꾸고, EmpIDWidth 미만이면 0 을 채운다.
// 실패하지 않는다. 공백 여부는 필수 필드 검증의 몫이다.
func ToEmpID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			s = strconv.FormatInt(int64(f), 10)
		}
	}
	if len(s) < EmpIDWidth && isDigits(s) {
		s = strings.Repeat("0", EmpIDWidth-len(s)) + s
	}
	return s
}

// ToCode 셀 값을 허용 집합 내 정수 코드로 정규화
// numeric 은 정수 해석 가능 여부, ok 는 허용 집합 포함까지 통과했는지.
// 호출자는 numeric 으로 "숫자 아님"과 "허용 외 코드" 메시지를 구분한다.
func ToCode(raw string, allowed []int) (code *int, numeric, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || f != float64(int(f)) {
		return nil, false, false
	}
	v := int(f)
	for _, a := range allowed {
		if v == a {
			return &v, true, true
		}
	}
	return nil, true, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
