package model

// Field 정규화된 셀 값
// 정규화 실패는 예외가 아니라 데이터로 기록한다 (Valid=false).
type Field struct {
	Raw     string   // 원본 셀 문자열
	Present bool     // 셀이 비어있지 않았는지
	Valid   bool     // 정규화 성공 여부
	Text    string   // FieldText 결과
	Number  *float64 // FieldNumber 결과 (명시적 null 이면 nil, Valid=true)
	Code    *int     // FieldCode 결과
	Date    string   // FieldDate 결과 (YYYY-MM-DD, 실패 시 "")
}

// CanonicalRecord 정규화된 명부 레코드
// 출처(시트명, 1-based 행 번호)를 항상 함께 보존한다.
type CanonicalRecord struct {
	SheetName string
	RowNumber int // 엑셀 기준 행 번호 (헤더 포함, 데이터 첫 행 = 2)
	Kind      RosterKind
	EmpID     string
	Fields    map[string]Field
}

// Has 컬럼이 채워져 있고 정규화에 성공했는지
func (r *CanonicalRecord) Has(col string) bool {
	f, ok := r.Fields[col]
	if !ok || !f.Present || !f.Valid {
		return false
	}
	switch {
	case f.Number != nil, f.Code != nil, f.Date != "", f.Text != "":
		return true
	}
	return false
}

// Date 컬럼의 날짜 값 (없으면 "")
func (r *CanonicalRecord) Date(col string) string {
	return r.Fields[col].Date
}

// Number 컬럼의 숫자 값
func (r *CanonicalRecord) Number(col string) (float64, bool) {
	f := r.Fields[col]
	if f.Number == nil {
		return 0, false
	}
	return *f.Number, true
}

// Code 컬럼의 코드 값
func (r *CanonicalRecord) Code(col string) (int, bool) {
	f := r.Fields[col]
	if f.Code == nil {
		return 0, false
	}
	return *f.Code, true
}
