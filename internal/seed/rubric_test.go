package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillDataCoversTheAlphabet(t *testing.T) {
	assert.Len(t, skillData, 26)
	for i, sk := range skillData {
		assert.Equal(t, rune('A'+i), sk.letter)
		assert.NotEmpty(t, sk.name)
		assert.NotEmpty(t, sk.action)
	}
}

func TestStageDataLetterRanges(t *testing.T) {
	assert.Len(t, stageData, 4)
	assert.Equal(t, []rune("ABCELR"), stageData[0].letters)
	assert.Len(t, stageData[1].letters, 16)
	assert.Len(t, stageData[2].letters, 22)
	assert.Len(t, stageData[3].letters, 26)

	// every referenced letter resolves to a seeded skill id
	for _, s := range stageData {
		for _, letter := range s.letters {
			id := skillID(letter)
			assert.GreaterOrEqual(t, id, uint(1))
			assert.LessOrEqual(t, id, uint(26))
		}
	}
}

func TestRubricLevels(t *testing.T) {
	levels := rubricLevels("a timed split step from an athletic ready position")
	assert.True(t, strings.HasPrefix(levels[0], "Introduced:"))
	assert.True(t, strings.HasPrefix(levels[1], "Developing:"))
	assert.True(t, strings.HasPrefix(levels[2], "Stable:"))
	assert.True(t, strings.HasPrefix(levels[3], "Applied:"))
	assert.True(t, strings.HasPrefix(levels[4], "Competitive:"))
	for _, level := range levels {
		assert.Contains(t, level, "split step")
	}
}

func TestSkillID(t *testing.T) {
	assert.Equal(t, uint(1), skillID('A'))
	assert.Equal(t, uint(26), skillID('Z'))
}
