package parser

import (
	"strings"
	"unicode"
)

// NormalizeName 시트명/컬럼명 정규화
// 한글/영문/숫자만 남기고 소문자로 변환한다. "(2-2)재직자 명부" -> "22재직자명부"
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ContainsToken 정규화된 텍스트가 토큰을 포함하는지
// 토큰은 "퇴직자|dc전환자" 처럼 | 로 대안을 나열할 수 있다.
func ContainsToken(normalized, token string) bool {
	for _, alt := range strings.Split(token, "|") {
		if alt != "" && strings.Contains(normalized, NormalizeName(alt)) {
			return true
		}
	}
	return false
}

// ContainsAll 모든 토큰을 포함하는지
func ContainsAll(normalized string, tokens []string) bool {
	for _, tok := range tokens {
		if !ContainsToken(normalized, tok) {
			return false
		}
	}
	return true
}

// ContainsAny 하나라도 포함하는지
func ContainsAny(normalized string, tokens []string) bool {
	for _, tok := range tokens {
		if ContainsToken(normalized, tok) {
			return true
		}
	}
	return false
}
