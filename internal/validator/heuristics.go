package validator

import (
	"fmt"

	"rostercheck/internal/model"
)

// 2차 검증: K-IFRS 1019 맥락 개연성 검증
// 확률 모델이 아니라 결정적 휴리스틱이다. 모두 경고로만 남긴다.

// ruleLowSalary 기준급여 최저임금 미달
var ruleLowSalary = Rule{
	Name: "low_salary",
	Check: func(rec *model.CanonicalRecord, ctx *Context) []model.Finding {
		salary, ok := rec.Number("base_salary")
		if !ok || salary >= ctx.Cfg.MinimumWage {
			return nil
		}
		return []model.Finding{finding(rec, "base_salary", model.TypeLowSalary,
			fmt.Sprintf("기준급여가 최저임금보다 낮습니다: %s원 (확인 필요)", formatComma(salary)), model.SeverityWarning)}
	},
}

// ruleSeverancePlausibility 급여·근속 대비 추계액 개연성
// 확정급여채무는 근속과 급여에 대략 비례해야 한다. 적용배수를 감안한
// 기대 구간(하한/상한 배수는 설정값)을 벗어나면 이상치로 본다.
var ruleSeverancePlausibility = Rule{
	Name: "severance_plausibility",
	Check: func(rec *model.CanonicalRecord, ctx *Context) []model.Finding {
		salary, okSalary := rec.Number("base_salary")
		severance, okSev := rec.Number("current_year_severance")
		hire, okHire := parseISO(rec.Date("hire_date"))
		if !okSalary || !okSev || !okHire || salary <= 0 {
			return nil
		}

		multiplier := 1.0
		if m, ok := rec.Number("applicable_multiplier"); ok && m != 0 {
			multiplier = m
		}

		service := yearsBetween(hire, ctx.Base)
		if service <= 1 {
			return nil
		}

		expectedMin := salary * (service - 1) * multiplier * ctx.Cfg.SeveranceBandLow
		expectedMax := salary * (service + 1) * multiplier * ctx.Cfg.SeveranceBandHigh
		if severance >= expectedMin && severance <= expectedMax {
			return nil
		}

		return []model.Finding{finding(rec, "current_year_severance", model.TypeSeveranceSalaryMismatch,
			fmt.Sprintf("급여(%s) 및 근속(%.1f년) 대비 추계액(%s)이 맥락상 이상치로 의심됩니다",
				formatComma(salary), service, formatComma(severance)), model.SeverityWarning)}
	},
}

// ruleAgeTenure 연령 대비 근속연수 일관성
// 연령 - 근속연수 >= 최소 근로 연령이어야 한다.
var ruleAgeTenure = Rule{
	Name: "age_tenure",
	Check: func(rec *model.CanonicalRecord, ctx *Context) []model.Finding {
		birth, okBirth := parseISO(rec.Date("birth_date"))
		hire, okHire := parseISO(rec.Date("hire_date"))
		if !okBirth || !okHire {
			return nil
		}

		age := yearsBetween(birth, ctx.Base)
		tenure := yearsBetween(hire, ctx.Base)
		if age-tenure >= ctx.Cfg.MinWorkingAge {
			return nil
		}

		return []model.Finding{finding(rec, "hire_date", model.TypeAgeTenureInconsistent,
			fmt.Sprintf("연령(%.1f세) 대비 근속연수(%.1f년)가 비정상적으로 깁니다", age, tenure), model.SeverityWarning)}
	},
}

// ruleRetirementAmountSuspect 퇴직/전환 금액 최소 개연 수준 검증
var ruleRetirementAmountSuspect = Rule{
	Name: "retirement_amount_suspect",
	Check: func(rec *model.CanonicalRecord, ctx *Context) []model.Finding {
		amount, ok := rec.Number("retirement_or_dc_amount")
		if !ok || amount <= 0 || amount >= ctx.Cfg.MinRetirementAmount {
			return nil
		}
		return []model.Finding{finding(rec, "retirement_or_dc_amount", model.TypeSeveranceAmountSuspect,
			fmt.Sprintf("퇴직/전환 금액(%s)이 일반적인 수준보다 너무 적습니다. 데이터 누락인지 확인 필요", formatComma(amount)), model.SeverityWarning)}
	},
}
