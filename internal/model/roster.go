package model

// RosterKind 명부 종류
type RosterKind string

const (
	RosterActive         RosterKind = "active"          // 재직자 명부
	RosterRetired        RosterKind = "retired"         // 퇴직자 및 DC전환자 명부
	RosterSupplemental   RosterKind = "supplemental"    // 추가 명부(장기근속)
	RosterLongTermActive RosterKind = "long_term_active" // 기타장기 재직자 명부 (선택)
)

// FieldType 컬럼 의미 타입
type FieldType int

const (
	FieldText   FieldType = iota // 문자열 (사원번호)
	FieldDate                    // 날짜 (YYYYMMDD / YYYY-MM-DD)
	FieldNumber                  // 숫자 (천단위 콤마 허용)
	FieldCode                    // 허용 집합이 정해진 정수 코드
)

// ColumnSpec 명부 컬럼 정의
type ColumnSpec struct {
	Name     string    // 표준 컬럼명 (emp_id 등)
	Label    string    // 사용자 메시지용 한글 라벨
	Type     FieldType
	Required bool
	Allowed  []int    // FieldCode 전용 허용 집합
	Aliases  []string // 원본 엑셀 헤더 후보 (공백 제거 후 비교)
}

// RosterSpec 명부 종류별 정의
type RosterSpec struct {
	Kind         RosterKind
	StandardName string   // 표준 시트명
	Keywords     []string // 시트명 인식 키워드 (| 로 대안 표기, 모두 포함되어야 매칭)
	Excludes     []string // 포함되면 매칭 제외
	Optional     bool
	Columns      []ColumnSpec
}

// 공통 허용 코드 집합
var (
	GenderCodes       = []int{1, 2}          // 1: 남자, 2: 여자
	EmployeeTypeCodes = []int{1, 3, 4}       // 1: 직원, 3: 임원, 4: 계약직
	PlanTypeCodes     = []int{1, 2, 3}       // 제도구분
	RetiredReasons    = []int{1, 2}          // 1: 퇴직, 2: DC전환
	SuppleReasons     = []int{1, 2, 3, 4, 5} // 1:관계사전입 2:관계사전출 3:사업합병전 4:사업합병후 5:기타장기종업원
)

var empIDAliases = []string{"사원번호", "직원번호", "employee_no"}

// Rosters 명부 정의 테이블 (고정 순서, 프로세스 기동 시 1회 초기화 후 읽기 전용)
var Rosters = []RosterSpec{
	{
		Kind:         RosterActive,
		StandardName: "재직자 명부",
		Keywords:     []string{"재직자", "명부"},
		Excludes:     []string{"기타장기"},
		Columns: []ColumnSpec{
			{Name: "emp_id", Label: "사원번호", Type: FieldText, Required: true, Aliases: empIDAliases},
			{Name: "birth_date", Label: "생년월일", Type: FieldDate, Required: true, Aliases: []string{"생년월일", "생일"}},
			{Name: "gender", Label: "성별", Type: FieldCode, Allowed: GenderCodes, Aliases: []string{"성별", "성별(1:남자,2:여자)"}},
			{Name: "hire_date", Label: "입사일자", Type: FieldDate, Required: true, Aliases: []string{"입사일자", "입사일"}},
			{Name: "base_salary", Label: "기준급여", Type: FieldNumber, Required: true, Aliases: []string{"기준급여", "급여"}},
			{Name: "current_year_severance", Label: "당년도퇴직급여추계액", Type: FieldNumber, Aliases: []string{"당년도퇴직급여추계액"}},
			{Name: "next_year_severance", Label: "차년도퇴직급여추계액", Type: FieldNumber, Aliases: []string{"차년도퇴직급여추계액"}},
			{Name: "employee_type", Label: "종업원구분", Type: FieldCode, Required: true, Allowed: EmployeeTypeCodes, Aliases: []string{"종업원구분", "중업원구분", "직원구분", "종업원구분(1:직원,3:임원,4:계약직)"}},
			{Name: "interim_settlement_date", Label: "중간정산기준일", Type: FieldDate, Aliases: []string{"중간정산기준일"}},
			{Name: "interim_settlement_amount", Label: "중간정산액", Type: FieldNumber, Aliases: []string{"중간정산액"}},
			{Name: "plan_type", Label: "제도구분", Type: FieldCode, Allowed: PlanTypeCodes, Aliases: []string{"제도구분", "제도구분(1,2,3)"}},
			{Name: "applicable_multiplier", Label: "적용배수", Type: FieldNumber, Aliases: []string{"적용배수", "배수"}},
		},
	},
	{
		Kind:         RosterRetired,
		StandardName: "퇴직자 및 DC전환자 명부",
		Keywords:     []string{"퇴직자|dc전환자", "명부"},
		Columns: []ColumnSpec{
			{Name: "emp_id", Label: "사원번호", Type: FieldText, Required: true, Aliases: empIDAliases},
			{Name: "birth_date", Label: "생년월일", Type: FieldDate, Required: true, Aliases: []string{"생년월일", "생일"}},
			{Name: "gender", Label: "성별", Type: FieldCode, Allowed: GenderCodes, Aliases: []string{"성별", "성별(1:남자,2:여자)"}},
			{Name: "hire_date", Label: "입사일자", Type: FieldDate, Required: true, Aliases: []string{"입사일자", "입사일"}},
			{Name: "retirement_or_dc_date", Label: "퇴직일또는DC전환일", Type: FieldDate, Required: true, Aliases: []string{"퇴직일또는dc전환일", "퇴직일", "dc전환일"}},
			{Name: "retirement_or_dc_amount", Label: "퇴직금또는DC전환금", Type: FieldNumber, Required: true, Aliases: []string{"퇴직금또는dc전환금", "퇴직금", "dc전환금"}},
			{Name: "employee_type", Label: "종업원구분", Type: FieldCode, Allowed: EmployeeTypeCodes, Aliases: []string{"종업원구분", "중업원구분", "직원구분", "종업원구분(1:직원,3:임원,4:계약직)"}},
			{Name: "reason", Label: "사유", Type: FieldCode, Allowed: RetiredReasons, Aliases: []string{"사유", "사유(1:퇴직,2:dc전환)", "퇴직사유"}},
			{Name: "plan_type", Label: "제도구분", Type: FieldCode, Allowed: PlanTypeCodes, Aliases: []string{"제도구분", "제도구분(1,2,3)"}},
		},
	},
	{
		Kind:         RosterSupplemental,
		StandardName: "추가 명부(장기근속)",
		Keywords:     []string{"추가|전출입", "명부"},
		Columns: []ColumnSpec{
			{Name: "emp_id", Label: "사원번호", Type: FieldText, Required: true, Aliases: empIDAliases},
			{Name: "birth_date", Label: "생년월일", Type: FieldDate, Aliases: []string{"생년월일", "생일"}},
			{Name: "gender", Label: "성별", Type: FieldCode, Allowed: GenderCodes, Aliases: []string{"성별", "성별(1:남자,2:여자)"}},
			{Name: "hire_date", Label: "입사일자", Type: FieldDate, Aliases: []string{"입사일자", "입사일"}},
			{Name: "base_salary", Label: "기준급여", Type: FieldNumber, Aliases: []string{"기준급여", "급여"}},
			{Name: "reason_occurrence_amount", Label: "사유발생일시점발생금액", Type: FieldNumber, Aliases: []string{"사유발생일시점발생금액", "발생금액"}},
			{Name: "employee_type", Label: "종업원구분", Type: FieldCode, Allowed: EmployeeTypeCodes, Aliases: []string{"종업원구분", "중업원구분", "직원구분", "종업원구분(1:직원,3:임원,4:계약직)"}},
			{Name: "interim_settlement_date", Label: "중간정산기준일", Type: FieldDate, Aliases: []string{"중간정산기준일"}},
			{Name: "reason", Label: "사유", Type: FieldCode, Required: true, Allowed: SuppleReasons, Aliases: []string{"사유", "사유(1:관계사전입,2:관계사전출,3:사업합병전,4:사업합병후,5:기타장기종업원)"}},
			{Name: "reason_occurrence_date", Label: "사유발생일", Type: FieldDate, Aliases: []string{"사유발생일"}},
		},
	},
	{
		Kind:         RosterLongTermActive,
		StandardName: "기타장기 재직자 명부",
		Keywords:     []string{"기타장기"},
		Optional:     true,
		Columns: []ColumnSpec{
			{Name: "emp_id", Label: "사원번호", Type: FieldText, Required: true, Aliases: empIDAliases},
			{Name: "birth_date", Label: "생년월일", Type: FieldDate, Aliases: []string{"생년월일", "생일"}},
			{Name: "gender", Label: "성별", Type: FieldCode, Allowed: GenderCodes, Aliases: []string{"성별", "성별(1:남자,2:여자)"}},
			{Name: "hire_date", Label: "입사일자", Type: FieldDate, Aliases: []string{"입사일자", "입사일"}},
			{Name: "base_salary", Label: "기준급여", Type: FieldNumber, Aliases: []string{"기준급여", "급여"}},
			{Name: "employee_type", Label: "종업원구분", Type: FieldCode, Allowed: EmployeeTypeCodes, Aliases: []string{"종업원구분", "중업원구분", "직원구분"}},
		},
	},
}

// SpecOf 명부 종류의 정의 조회
func SpecOf(kind RosterKind) *RosterSpec {
	for i := range Rosters {
		if Rosters[i].Kind == kind {
			return &Rosters[i]
		}
	}
	return nil
}

// Column 표준 컬럼명으로 컬럼 정의 조회
func (s *RosterSpec) Column(name string) *ColumnSpec {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i]
		}
	}
	return nil
}
