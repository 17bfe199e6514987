package gpa

import "github.com/fahadturjmi/GPA-Calculator/internal/model"

// Rating 评级档位（封闭枚举）
type Rating int

const (
	RatingNone Rating = iota // 无已评分课程
	RatingFail
	RatingAcceptable
	RatingGood
	RatingVeryGood
	RatingExcellent
	RatingExcellentHigh
)

// Tone 评级对应的展示色调，由渲染端映射到具体样式
type Tone string

const (
	ToneGray   Tone = "gray"
	ToneGreen  Tone = "green"
	ToneBlue   Tone = "blue"
	ToneYellow Tone = "yellow"
	ToneOrange Tone = "orange"
	ToneRed    Tone = "red"
)

// ratingBands 阈值从高到低，下界闭区间，首个命中即返回
var ratingBands = [...]struct {
	min    float64
	rating Rating
}{
	{0.90, RatingExcellentHigh},
	{0.85, RatingExcellent},
	{0.75, RatingVeryGood},
	{0.65, RatingGood},
	{0.60, RatingAcceptable},
}

type ratingInfo struct {
	key   string
	label string
	tone  Tone
}

// 与 ratingBands 保持一一对应
var ratingTable = map[Rating]ratingInfo{
	RatingNone:          {key: "none", label: "-", tone: ToneGray},
	RatingFail:          {key: "fail", label: "راسب", tone: ToneRed},
	RatingAcceptable:    {key: "acceptable", label: "مقبول", tone: ToneOrange},
	RatingGood:          {key: "good", label: "جيد", tone: ToneYellow},
	RatingVeryGood:      {key: "very_good", label: "جيد جداً", tone: ToneBlue},
	RatingExcellent:     {key: "excellent", label: "ممتاز", tone: ToneGreen},
	RatingExcellentHigh: {key: "excellent_high", label: "ممتاز مرتفع", tone: ToneGreen},
}

// String 机器可读的档位键
func (r Rating) String() string {
	if info, ok := ratingTable[r]; ok {
		return info.key
	}
	return "none"
}

// Label 展示用评级文字；RatingNone 为 "-"
func (r Rating) Label() string {
	if info, ok := ratingTable[r]; ok {
		return info.label
	}
	return "-"
}

// Tone 展示色调
func (r Rating) Tone() Tone {
	if info, ok := ratingTable[r]; ok {
		return info.tone
	}
	return ToneGray
}

// MarshalText 序列化为档位键
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Classify 按 gpa / 满分 的比例分档
func Classify(gpa float64, scale model.GradeScale) Rating {
	return classifyPercentage(gpa / scale.MaxGPA())
}

func classifyPercentage(p float64) Rating {
	for _, b := range ratingBands {
		if p >= b.min {
			return b.rating
		}
	}
	return RatingFail
}
