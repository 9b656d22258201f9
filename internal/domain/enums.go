// Package domain 定义领域模型和接口
package domain

import (
	"math/rand"
)

// EntryState 条目生命周期状态
type EntryState string

const (
	EntryStateDraft     EntryState = "draft"
	EntryStatePublished EntryState = "published"
	EntryStateArchived  EntryState = "archived"
)

// entryTransitions lists the allowed lifecycle moves.
// entryTransitions 列出允许的生命周期流转
var entryTransitions = map[EntryState][]EntryState{
	EntryStateDraft:     {EntryStatePublished, EntryStateArchived},
	EntryStatePublished: {EntryStateDraft, EntryStateArchived},
	EntryStateArchived:  {EntryStateDraft, EntryStatePublished},
}

// ValidEntryState 判断状态取值是否合法
func ValidEntryState(s EntryState) bool {
	_, ok := entryTransitions[s]
	return ok
}

// CanTransition reports whether moving from one state to another is allowed.
// CanTransition 判断从一个状态流转到另一个状态是否允许
func CanTransition(from, to EntryState) bool {
	for _, next := range entryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Mood 条目心情
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodAngry    Mood = "angry"
	MoodPeaceful Mood = "peaceful"
	MoodAnxious  Mood = "anxious"
	MoodGrateful Mood = "grateful"
	MoodTired    Mood = "tired"
)

// moodLabels 心情的展示标签
var moodLabels = map[Mood]string{
	MoodHappy:    "😊 Happy",
	MoodSad:      "😢 Sad",
	MoodExcited:  "😃 Excited",
	MoodAngry:    "😠 Angry",
	MoodPeaceful: "😌 Peaceful",
	MoodAnxious:  "😰 Anxious",
	MoodGrateful: "🙏 Grateful",
	MoodTired:    "😴 Tired",
}

// moodOrder keeps a stable presentation order for listings and analytics.
// moodOrder 保持列表与统计的稳定展示顺序
var moodOrder = []Mood{
	MoodHappy, MoodSad, MoodExcited, MoodAngry,
	MoodPeaceful, MoodAnxious, MoodGrateful, MoodTired,
}

// ValidMood 判断心情取值是否合法，空值表示未填写
func ValidMood(m Mood) bool {
	if m == "" {
		return true
	}
	_, ok := moodLabels[m]
	return ok
}

// Label 返回心情的展示标签
func (m Mood) Label() string {
	return moodLabels[m]
}

// Moods 返回全部心情，顺序稳定
func Moods() []Mood {
	out := make([]Mood, len(moodOrder))
	copy(out, moodOrder)
	return out
}

// Color 笔记本与标签使用的调色板索引
type Color int

// colorNames 调色板，索引 0-11
var colorNames = [...]string{
	"Grey", "Red", "Orange", "Yellow", "Light Blue", "Dark Purple",
	"Salmon Pink", "Medium Blue", "Dark Blue", "Fuchsia", "Green", "Purple",
}

// ColorCount 调色板大小
const ColorCount = len(colorNames)

// ValidColor 判断颜色索引是否在调色板内
func ValidColor(c Color) bool {
	return c >= 0 && int(c) < ColorCount
}

// Name 返回颜色名称
func (c Color) Name() string {
	if !ValidColor(c) {
		return ""
	}
	return colorNames[c]
}

// RandomColor picks a palette index for newly created notebooks and tags.
// RandomColor 为新建的笔记本和标签挑选一个调色板索引
func RandomColor() Color {
	return Color(rand.Intn(ColorCount))
}
