package validator

import (
	"fmt"

	"rostercheck/internal/model"
	"rostercheck/internal/parser"
)

// 1차 검증: 하드코딩된 구조/업무 규칙

// ruleRequiredFields 필수 필드 존재 검증
// 정규화 후 기준으로 본다. "-" 같은 명시적 null 도 빈 값이다.
// 형식 오류(Valid=false)는 형식 규칙이 지적하므로 여기서 겹쳐 지적하지 않는다.
var ruleRequiredFields = Rule{
	Name: "required_fields",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		spec := model.SpecOf(rec.Kind)
		var out []model.Finding
		for _, col := range spec.Columns {
			if !col.Required {
				continue
			}
			f := rec.Fields[col.Name]
			if !f.Present || (f.Valid && !rec.Has(col.Name)) {
				out = append(out, finding(rec, col.Name, model.TypeRequiredFieldMissing,
					fmt.Sprintf("필수 필드 '%s'가 비어있습니다", col.Label), model.SeverityError))
			}
		}
		return out
	},
}

// ruleDateFormats 날짜 형식 검증
var ruleDateFormats = Rule{
	Name: "date_formats",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		spec := model.SpecOf(rec.Kind)
		var out []model.Finding
		for _, col := range spec.Columns {
			if col.Type != model.FieldDate {
				continue
			}
			f := rec.Fields[col.Name]
			if f.Present && !f.Valid {
				out = append(out, finding(rec, col.Name, model.TypeDateFormatInvalid,
					fmt.Sprintf("'%s' 형식이 올바르지 않습니다: %s (YYYY-MM-DD 형식 필요)", col.Label, f.Raw), model.SeverityError))
			}
		}
		return out
	},
}

// ruleNumberFormats 숫자 해석 실패 검증
var ruleNumberFormats = Rule{
	Name: "number_formats",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		spec := model.SpecOf(rec.Kind)
		var out []model.Finding
		for _, col := range spec.Columns {
			if col.Type != model.FieldNumber {
				continue
			}
			f := rec.Fields[col.Name]
			if f.Present && !f.Valid {
				out = append(out, finding(rec, col.Name, model.TypeInvalidNumber,
					fmt.Sprintf("'%s' 값을 숫자로 해석할 수 없습니다: %s", col.Label, f.Raw), model.SeverityError))
			}
		}
		return out
	},
}

// ruleCodeValues 코드 값 검증
// "숫자 아님"과 "허용 외 코드"를 구분해 메시지를 만든다. 둘 다 오류.
var ruleCodeValues = Rule{
	Name: "code_values",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		spec := model.SpecOf(rec.Kind)
		var out []model.Finding
		for _, col := range spec.Columns {
			if col.Type != model.FieldCode {
				continue
			}
			f := rec.Fields[col.Name]
			if !f.Present || f.Valid {
				continue
			}
			_, numeric, _ := parser.ToCode(f.Raw, col.Allowed)
			msg := fmt.Sprintf("'%s' 값이 숫자가 아닙니다: %s", col.Label, f.Raw)
			if numeric {
				msg = fmt.Sprintf("'%s' 값이 허용 범위를 벗어났습니다: %s", col.Label, f.Raw)
			}
			out = append(out, finding(rec, col.Name, model.TypeInvalidCode, msg, model.SeverityError))
		}
		return out
	},
}

// ruleNonNegative 금액/배수 필드 음수 검증
var ruleNonNegative = Rule{
	Name: "non_negative",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		spec := model.SpecOf(rec.Kind)
		var out []model.Finding
		for _, col := range spec.Columns {
			if col.Type != model.FieldNumber {
				continue
			}
			if v, ok := rec.Number(col.Name); ok && v < 0 {
				out = append(out, finding(rec, col.Name, model.TypeValueOutOfRange,
					fmt.Sprintf("'%s'이(가) 음수입니다: %s", col.Label, formatComma(v)), model.SeverityError))
			}
		}
		return out
	},
}

// ruleDateOrder 날짜 간 논리 순서 검증
var ruleDateOrder = Rule{
	Name: "date_order",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		var out []model.Finding

		birth, hasBirth := parseISO(rec.Date("birth_date"))
		hire, hasHire := parseISO(rec.Date("hire_date"))

		if hasBirth && hasHire && hire.Before(birth) {
			out = append(out, finding(rec, "hire_date", model.TypeDateOrderInvalid,
				fmt.Sprintf("입사일(%s)이 생년월일(%s)보다 빠릅니다", rec.Date("hire_date"), rec.Date("birth_date")), model.SeverityError))
		}

		if interim, ok := parseISO(rec.Date("interim_settlement_date")); ok && hasHire && interim.Before(hire) {
			out = append(out, finding(rec, "interim_settlement_date", model.TypeDateOrderInvalid,
				fmt.Sprintf("중간정산일(%s)이 입사일(%s)보다 빠릅니다", rec.Date("interim_settlement_date"), rec.Date("hire_date")), model.SeverityError))
		}

		if retire, ok := parseISO(rec.Date("retirement_or_dc_date")); ok && hasHire && retire.Before(hire) {
			out = append(out, finding(rec, "retirement_or_dc_date", model.TypeDateOrderInvalid,
				fmt.Sprintf("퇴직일 또는 DC전환일(%s)이 입사일(%s)보다 빠릅니다", rec.Date("retirement_or_dc_date"), rec.Date("hire_date")), model.SeverityError))
		}

		return out
	},
}

// ruleHireAge 입사 연령 범위 검증
var ruleHireAge = Rule{
	Name: "hire_age",
	Check: func(rec *model.CanonicalRecord, ctx *Context) []model.Finding {
		birth, hasBirth := parseISO(rec.Date("birth_date"))
		hire, hasHire := parseISO(rec.Date("hire_date"))
		if !hasBirth || !hasHire || hire.Before(birth) {
			return nil
		}
		age := yearsBetween(birth, hire)
		switch {
		case age < ctx.Cfg.HireAgeMin:
			return []model.Finding{finding(rec, "hire_date", model.TypeInvalidAge,
				fmt.Sprintf("입사연령이 %.0f세 미만입니다: %.1f세", ctx.Cfg.HireAgeMin, age), model.SeverityError)}
		case age > ctx.Cfg.HireAgeMax:
			return []model.Finding{finding(rec, "hire_date", model.TypeInvalidAge,
				fmt.Sprintf("입사연령이 %.0f세 초과입니다: %.1f세", ctx.Cfg.HireAgeMax, age), model.SeverityError)}
		}
		return nil
	},
}

// ruleConditionalSeverance 종업원구분이 임원/계약직이면 추계액 필수
var ruleConditionalSeverance = Rule{
	Name: "conditional_severance",
	Check: func(rec *model.CanonicalRecord, _ *Context) []model.Finding {
		et, ok := rec.Code("employee_type")
		if !ok || et <= 2 {
			return nil
		}
		var out []model.Finding
		for _, col := range []string{"current_year_severance", "next_year_severance"} {
			v, has := rec.Number(col)
			if !has || v == 0 {
				spec := model.SpecOf(rec.Kind)
				out = append(out, finding(rec, col, model.TypeConditionalFieldMissing,
					fmt.Sprintf("종업원구분이 %d일 때 %s이(가) 필요합니다", et, spec.Column(col).Label), model.SeverityError))
			}
		}
		return out
	},
}

// 1차 검증: 교차 규칙 (전 시트 매핑 후 2차 패스)

// ruleDuplicateInActiveSheet 재직자 명부 내 사원번호 중복
var ruleDuplicateInActiveSheet = CrossRule{
	Name: "duplicate_in_active",
	Check: func(ctx *Context) []model.Finding {
		records := ctx.Records[model.RosterActive]
		rows := make(map[string][]int)
		for i := range records {
			if records[i].EmpID == "" {
				continue
			}
			rows[records[i].EmpID] = append(rows[records[i].EmpID], records[i].RowNumber)
		}

		var out []model.Finding
		for i := range records {
			rec := &records[i]
			dup := rows[rec.EmpID]
			if rec.EmpID == "" || len(dup) < 2 {
				continue
			}
			out = append(out, finding(rec, "emp_id", model.TypeDuplicateEmpID,
				fmt.Sprintf("사원번호 중복: %s (행: %v)", rec.EmpID, dup), model.SeverityError))
		}
		return out
	},
}

// ruleActiveRetiredOverlap 재직자/퇴직자 명부 간 사원번호 중복
// 같은 보고 기간에 양쪽에 있으면 경고로 남긴다 (퇴직자 쪽 행에 지적).
var ruleActiveRetiredOverlap = CrossRule{
	Name: "active_retired_overlap",
	Check: func(ctx *Context) []model.Finding {
		active := empIDSet(ctx.Records[model.RosterActive])
		var out []model.Finding
		retired := ctx.Records[model.RosterRetired]
		for i := range retired {
			rec := &retired[i]
			if rec.EmpID != "" && active[rec.EmpID] {
				out = append(out, finding(rec, "emp_id", model.TypeDuplicateAcrossSheets,
					fmt.Sprintf("퇴직자(%s)가 재직자명부에도 존재합니다", rec.EmpID), model.SeverityWarning))
			}
		}
		return out
	},
}

// ruleSupplementalMembership 추가 명부 사유별 소속 검증
// 사유 1(관계사전입)/5(기타장기종업원)는 재직자 명부에 있어야 하고,
// 사유 2(관계사전출)는 퇴직자 명부와 겹치면 안 된다.
var ruleSupplementalMembership = CrossRule{
	Name: "supplemental_membership",
	Check: func(ctx *Context) []model.Finding {
		active := empIDSet(ctx.Records[model.RosterActive])
		retired := empIDSet(ctx.Records[model.RosterRetired])

		var out []model.Finding
		supple := ctx.Records[model.RosterSupplemental]
		for i := range supple {
			rec := &supple[i]
			reason, ok := rec.Code("reason")
			if !ok || rec.EmpID == "" {
				continue
			}
			switch reason {
			case 1, 5:
				if !active[rec.EmpID] {
					name := "관계사전입"
					if reason == 5 {
						name = "기타장기종업원"
					}
					out = append(out, finding(rec, "emp_id", model.TypeSuppleNotInActive,
						fmt.Sprintf("%s(%s)가 재직자명부에 없습니다", name, rec.EmpID), model.SeverityError))
				}
			case 2:
				if retired[rec.EmpID] {
					out = append(out, finding(rec, "emp_id", model.TypeSuppleInRetired,
						fmt.Sprintf("관계사전출(%s)이 퇴직자명부에도 존재합니다", rec.EmpID), model.SeverityError))
				}
			}
		}
		return out
	},
}

func empIDSet(records []model.CanonicalRecord) map[string]bool {
	set := make(map[string]bool, len(records))
	for i := range records {
		if records[i].EmpID != "" {
			set[records[i].EmpID] = true
		}
	}
	return set
}

func finding(rec *model.CanonicalRecord, column, typ, message string, sev model.Severity) model.Finding {
	return model.Finding{
		Sheet:    rec.SheetName,
		Row:      rec.RowNumber,
		Column:   column,
		EmpID:    rec.EmpID,
		Type:     typ,
		Message:  message,
		Severity: sev,
	}
}
