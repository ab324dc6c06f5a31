package model

// Severity 지적 사항 심각도
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// 지적 사항 타입 코드 (기계 판독용, 변경 금지)
const (
	TypeRequiredFieldMissing    = "required_field_missing"
	TypeValueOutOfRange         = "value_out_of_range"
	TypeDateFormatInvalid       = "date_format_invalid"
	TypeDateOrderInvalid        = "date_order_invalid"
	TypeInvalidCode             = "invalid_code"
	TypeInvalidNumber           = "invalid_number"
	TypeInvalidAge              = "invalid_age"
	TypeConditionalFieldMissing = "conditional_field_missing"
	TypeDuplicateEmpID          = "duplicate_emp_id"
	TypeDuplicateAcrossSheets   = "duplicate_emp_id_across_sheets"
	TypeSuppleNotInActive       = "supplemental_not_in_active"
	TypeSuppleInRetired         = "supplemental_in_retired"
	TypeDuplicateSheetMatch     = "duplicate_sheet_match"
	TypeLowSalary               = "low_salary"
	TypeSeveranceSalaryMismatch = "severance_salary_mismatch"
	TypeAgeTenureInconsistent   = "age_tenure_inconsistent"
	TypeSeveranceAmountSuspect  = "severance_amount_suspect"
)

// Finding 검증 지적 사항
// 레코드는 (시트, 행) 좌표로만 참조한다. Row=0 은 시트 단위 지적.
type Finding struct {
	Sheet    string   `json:"sheet"`
	Row      int      `json:"row"`
	Column   string   `json:"column"`
	EmpID    string   `json:"emp_id"`
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationReport 업로드 1건에 대한 검증 결과
// 요청마다 새로 만들고 응답 후 버린다.
type ValidationReport struct {
	TotalRecords   int       `json:"total_records"`
	ValidRecords   int       `json:"valid_records"`
	InvalidRecords int       `json:"invalid_records"`
	Errors         []Finding `json:"errors"`
	Warnings       []Finding `json:"warnings"`
	SummaryReport  []string  `json:"summary_report"`
}
