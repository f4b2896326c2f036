package templates

import "math/rand"

// Distractor pool categories.
const (
	CategoryTranslations = "translations"
	CategoryPinyin       = "pinyin"
	CategoryHanzi        = "hanzi"
)

// Pool holds curated candidate sets for plausible wrong answers. It is
// built once at startup and never mutated, so generation calls share it
// without locking.
type Pool struct {
	sets map[string][]string
}

func NewPool() *Pool {
	return &Pool{sets: map[string][]string{
		CategoryTranslations: {
			"hello", "thank you", "goodbye", "teacher", "student", "friend",
			"water", "to eat", "to drink", "big", "small", "good",
			"book", "school", "today", "tomorrow", "family", "to go",
			"to come", "happy", "beautiful", "China", "to study", "time",
		},
		CategoryPinyin: {
			"nǐ hǎo", "xièxie", "zàijiàn", "lǎoshī", "xuésheng", "péngyou",
			"shuǐ", "chī", "hē", "dà", "xiǎo", "hǎo",
			"shū", "xuéxiào", "jīntiān", "míngtiān", "jiā", "qù",
			"lái", "gāoxìng", "piàoliang", "zhōngguó", "xuéxí", "shíjiān",
		},
		CategoryHanzi: {
			"你好", "谢谢", "再见", "老师", "学生", "朋友",
			"水", "吃", "喝", "大", "小", "好",
			"书", "学校", "今天", "明天", "家", "去",
			"来", "高兴", "漂亮", "中国", "学习", "时间",
		},
	}}
}

// NewPoolFromSets builds a pool from caller-supplied candidate sets.
func NewPoolFromSets(sets map[string][]string) *Pool {
	copied := make(map[string][]string, len(sets))
	for name, items := range sets {
		copied[name] = append([]string(nil), items...)
	}
	return &Pool{sets: copied}
}

// Pick returns up to n distinct distractors from the named category,
// excluding the correct answer. When fewer than n eligible candidates
// exist the result is shorter — never padded or duplicated. The caller's
// rng drives the shuffle so tests can fix the sequence.
func (p *Pool) Pick(rng *rand.Rand, category, correct string, n int) []string {
	candidates := p.sets[category]
	if len(candidates) == 0 || n <= 0 {
		return nil
	}

	eligible := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == correct || seen[c] {
			continue
		}
		seen[c] = true
		eligible = append(eligible, c)
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}

// Categories returns the pool's category names.
func (p *Pool) Categories() []string {
	out := make([]string, 0, len(p.sets))
	for name := range p.sets {
		out = append(out, name)
	}
	return out
}
