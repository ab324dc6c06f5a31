package validator

import (
	"strconv"
	"strings"
	"time"

	"rostercheck/internal/config"
	"rostercheck/internal/model"
)

// Rule 레코드 단위 검증 규칙
// 레코드와 전체 명부 컨텍스트를 받아 지적 사항만 반환한다. 상태 변경 없음.
type Rule struct {
	Name  string
	Check func(rec *model.CanonicalRecord, ctx *Context) []model.Finding
}

// CrossRule 전체 명부가 모인 뒤 2차 패스로 실행되는 규칙 (시트 내/시트 간)
type CrossRule struct {
	Name  string
	Check func(ctx *Context) []model.Finding
}

// Context 규칙 실행 컨텍스트 (읽기 전용)
type Context struct {
	Records map[model.RosterKind][]model.CanonicalRecord
	Cfg     config.ValidationConfig
	Base    time.Time // 검증 기준일
}

// Engine 2단계 검증 엔진
// 1차: 구조/업무 규칙(오류 중심), 2차: K-IFRS 1019 맥락 개연성 검증(경고).
// 규칙은 선언 순서대로 실행되어 결과 순서가 재현 가능하다.
type Engine struct {
	cfg   config.ValidationConfig
	base  time.Time
	tier1 map[model.RosterKind][]Rule
	cross []CrossRule
	tier2 map[model.RosterKind][]Rule
}

// NewEngine 엔진 생성
// base 는 연령/근속 계산의 기준일. 테스트에서는 고정 날짜를 넣는다.
func NewEngine(cfg config.ValidationConfig, base time.Time) *Engine {
	return &Engine{
		cfg:  cfg,
		base: base,
		tier1: map[model.RosterKind][]Rule{
			model.RosterActive: {
				ruleRequiredFields,
				ruleDateFormats,
				ruleNumberFormats,
				ruleCodeValues,
				ruleNonNegative,
				ruleDateOrder,
				ruleHireAge,
				ruleConditionalSeverance,
			},
			model.RosterRetired: {
				ruleRequiredFields,
				ruleDateFormats,
				ruleNumberFormats,
				ruleCodeValues,
				ruleNonNegative,
				ruleDateOrder,
			},
			model.RosterSupplemental: {
				ruleRequiredFields,
				ruleDateFormats,
				ruleNumberFormats,
				ruleCodeValues,
				ruleNonNegative,
				ruleDateOrder,
			},
			model.RosterLongTermActive: {
				ruleRequiredFields,
				ruleDateFormats,
				ruleNumberFormats,
				ruleCodeValues,
				ruleNonNegative,
				ruleDateOrder,
			},
		},
		cross: []CrossRule{
			ruleDuplicateInActiveSheet,
			ruleActiveRetiredOverlap,
			ruleSupplementalMembership,
		},
		tier2: map[model.RosterKind][]Rule{
			model.RosterActive: {
				ruleLowSalary,
				ruleSeverancePlausibility,
				ruleAgeTenure,
			},
			model.RosterRetired: {
				ruleRetirementAmountSuspect,
			},
		},
	}
}

// Validate 전체 레코드 집합 검증
// 반환 순서: 명부 정의 순서 -> 레코드 순서 -> 1차 규칙 선언 순서,
// 이어서 교차 규칙, 마지막으로 2차 맥락 규칙. 입력이 같으면 출력도 같다.
func (e *Engine) Validate(records map[model.RosterKind][]model.CanonicalRecord) []model.Finding {
	ctx := &Context{Records: records, Cfg: e.cfg, Base: e.base}

	var findings []model.Finding

	// 1차: 레코드 단위 규칙
	for i := range model.Rosters {
		kind := model.Rosters[i].Kind
		rules := e.tier1[kind]
		for r := range records[kind] {
			rec := &records[kind][r]
			for _, rule := range rules {
				findings = append(findings, rule.Check(rec, ctx)...)
			}
		}
	}

	// 1차: 교차 규칙 (모든 시트 매핑 완료 후 한 번만)
	for _, rule := range e.cross {
		findings = append(findings, rule.Check(ctx)...)
	}

	// 2차: 맥락 개연성 검증
	// 필수 필드가 빠진 레코드에는 적용하지 않는다 (불완전 데이터에 대한 연쇄 경고 방지).
	for i := range model.Rosters {
		kind := model.Rosters[i].Kind
		rules := e.tier2[kind]
		if len(rules) == 0 {
			continue
		}
		spec := &model.Rosters[i]
		for r := range records[kind] {
			rec := &records[kind][r]
			if !requiredFieldsComplete(spec, rec) {
				continue
			}
			for _, rule := range rules {
				findings = append(findings, rule.Check(rec, ctx)...)
			}
		}
	}

	return findings
}

// requiredFieldsComplete 필수 컬럼이 전부 채워지고 정규화에 성공했는지
// 명시적 null("-") 은 채워진 것으로 치지 않는다 (ruleRequiredFields 와 같은 기준).
func requiredFieldsComplete(spec *model.RosterSpec, rec *model.CanonicalRecord) bool {
	for _, col := range spec.Columns {
		if col.Required && !rec.Has(col.Name) {
			return false
		}
	}
	return true
}

// parseISO YYYY-MM-DD 파싱 (빈 문자열이면 zero time)
func parseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// yearsBetween 두 시점 사이 연수 (365.25일 기준)
func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / 365.25
}

// formatComma 천단위 콤마 표기 (메시지용)
func formatComma(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 0, 64)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
