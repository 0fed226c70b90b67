package rubric

// Category is the top-level competency group an item belongs to,
// derived from the first character of its key.
type Category string

const (
	CategoryInquiry        Category = "A" // 탐구력
	CategorySelfDirection  Category = "B" // 자기주도성
	CategoryProblemSolving Category = "C" // 창의적 문제해결
)

// MinScore is the floor for every item regardless of category.
const MinScore = 3

const (
	maxScoreSeven = 7
	maxScoreFive  = 5
)

// Key identifies one evaluation criterion, pattern {Category}{Index}_{slug}.
type Key string

type item struct {
	key   Key
	label string
}

// Definition order is the canonical iteration order for the schema,
// the editor and the aggregation engine.
var items = []item{
	// Category A: 탐구력 (7-point items)
	{"A1_구체적_증명", "탐구과정 증명의 구체성"},
	{"A2_탐구_동기", "지적 호기심과 탐구 동기"},
	{"A3_자료_활용", "자료 활용 능력의 우수성"},
	{"A4_엮어_읽기", "주제 확장 및 엮어 읽기"},
	{"A5_횡적_연계", "탐구의 횡적 연계성"},
	{"A6_종적_연계", "탐구의 종적 연계성"},
	{"A7_오차_실패_분석", "오차 및 실패 원인 분석"},
	{"A8_우수성_키워드", "탐구 우수성 키워드 제시"},
	{"A9_심화_경험", "심화 탐구 활동 참여 경험"},

	// Category B: 자기주도성 (5-point items)
	{"B1_칭찬_남발_배제", "의미 없는 칭찬 나열 배제"},
	{"B2_내용_중복_배제", "타 교과 내용과 중복 배제"},
	{"B3_단순_서술_배제", "단순 보고서식 서술 배제"},
	{"B4_선생님께_질문", "질문을 통한 적극적 문제 해결"},
	{"B5_자기_성찰", "성찰을 통한 발전 노력"},

	// Category C: 창의적 문제해결 (7-point items)
	{"C1_일반적_서술_배제", "상투적, 일반적 서술 지양"},
	{"C2_미사여구_배제", "불필요한 미사여구 자제"},
	{"C3_전문용어_남발_배제", "불필요한 전문용어 남발 배제"},
	{"C4_지식_활용_문제해결", "교과 지식 활용 문제 해결"},
	{"C5_주도적_문제해결", "주도적 문제 발견 및 해결"},
	{"C6_실생활_문제해결", "학교 생활 속 문제 해결 노력"},
}

var labels = func() map[Key]string {
	m := make(map[Key]string, len(items))
	for _, it := range items {
		m[it.key] = it.label
	}
	return m
}()

// AllKeys returns every rubric key in definition order.
func AllKeys() []Key {
	keys := make([]Key, len(items))
	for i, it := range items {
		keys[i] = it.key
	}
	return keys
}

// Contains reports whether key is part of the rubric.
func Contains(key Key) bool {
	_, ok := labels[key]
	return ok
}

// LabelOf returns the display label for key, or "" for an unknown key.
func LabelOf(key Key) string {
	return labels[key]
}

// CategoryOf derives the category from the key's first character.
// The second return value is false for keys outside A/B/C.
func CategoryOf(key Key) (Category, bool) {
	if len(key) == 0 {
		return "", false
	}
	switch c := Category(key[0:1]); c {
	case CategoryInquiry, CategorySelfDirection, CategoryProblemSolving:
		return c, true
	default:
		return "", false
	}
}

// MaxScoreOf returns the score ceiling for key: 5 for category B items,
// 7 for everything else.
func MaxScoreOf(key Key) int {
	if cat, ok := CategoryOf(key); ok && cat == CategorySelfDirection {
		return maxScoreFive
	}
	return maxScoreSeven
}

// Categories returns the three categories in display order.
func Categories() []Category {
	return []Category{CategoryInquiry, CategorySelfDirection, CategoryProblemSolving}
}

// Name returns the Korean display name of the category.
func (c Category) Name() string {
	switch c {
	case CategoryInquiry:
		return "탐구력"
	case CategorySelfDirection:
		return "자기주도성"
	case CategoryProblemSolving:
		return "창의적 문제해결"
	default:
		return ""
	}
}

// MaxScore returns the per-item score ceiling for the category.
func (c Category) MaxScore() int {
	if c == CategorySelfDirection {
		return maxScoreFive
	}
	return maxScoreSeven
}
