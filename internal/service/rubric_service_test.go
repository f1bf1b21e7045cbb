package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shuttletrack/internal/model"
)

// A nil cache client degrades to hitting the store every time; the rubric
// must still come back intact.
func TestRubricService_Rubric(t *testing.T) {
	stages := new(MockStageRepository)
	stages.On("List", mock.Anything).Return([]model.Stage{
		{ID: 1, Name: "Stable Movers"},
		{ID: 2, Name: "Skill Builders"},
	}, nil)

	skills := new(MockSkillRepository)
	skills.On("ListWithStage", mock.Anything).Return([]model.SkillWithStage{
		{Skill: model.Skill{ID: 1, Name: "A: Agility & Split Step"}, StageID: 1},
	}, nil)

	svc := NewRubricService(stages, skills, nil)
	rubric, err := svc.Rubric(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rubric.Stages, 2)
	assert.Len(t, rubric.Skills, 1)
	assert.Equal(t, uint(1), rubric.Skills[0].StageID)
}

func TestRubricService_RubricWithNoSkills(t *testing.T) {
	stages := new(MockStageRepository)
	stages.On("List", mock.Anything).Return([]model.Stage{}, nil)

	skills := new(MockSkillRepository)
	skills.On("ListWithStage", mock.Anything).Return(nil, nil)

	svc := NewRubricService(stages, skills, nil)
	rubric, err := svc.Rubric(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, rubric.Skills)
	assert.Empty(t, rubric.Skills)
}

func TestRubricService_CreateSkill(t *testing.T) {
	tests := []struct {
		name      string
		stageID   uint
		setupMock func(skills *MockSkillRepository)
	}{
		{
			name:    "skill linked to a stage",
			stageID: 2,
			setupMock: func(skills *MockSkillRepository) {
				skills.On("Create", mock.Anything, mock.AnythingOfType("*model.Skill")).Return(nil)
				skills.On("LinkStage", mock.Anything, uint(2), uint(0)).Return(nil)
			},
		},
		{
			name:    "unassigned skill skips linking",
			stageID: 0,
			setupMock: func(skills *MockSkillRepository) {
				skills.On("Create", mock.Anything, mock.AnythingOfType("*model.Skill")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := new(MockSkillRepository)
			tt.setupMock(skills)

			svc := NewRubricService(new(MockStageRepository), skills, nil)
			err := svc.CreateSkill(context.Background(), &model.Skill{Name: "Z: Zone Control & Match Planning"}, tt.stageID)

			assert.NoError(t, err)
			skills.AssertExpectations(t)
		})
	}
}

func TestRubricService_StageMutations(t *testing.T) {
	stages := new(MockStageRepository)
	stages.On("Create", mock.Anything, mock.AnythingOfType("*model.Stage")).Return(nil)
	stages.On("Update", mock.Anything, mock.AnythingOfType("*model.Stage")).Return(nil)
	stages.On("Delete", mock.Anything, uint(3)).Return(nil)

	svc := NewRubricService(stages, new(MockSkillRepository), nil)

	assert.NoError(t, svc.CreateStage(context.Background(), &model.Stage{Name: "Tactical Developers"}))
	assert.NoError(t, svc.UpdateStage(context.Background(), &model.Stage{ID: 3, Name: "Match Performers"}))
	assert.NoError(t, svc.DeleteStage(context.Background(), 3))
	stages.AssertExpectations(t)
}
