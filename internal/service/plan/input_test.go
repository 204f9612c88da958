package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

func TestGeneratePlanInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   GeneratePlanInput
		wantErr bool
	}{
		{"valid", GeneratePlanInput{Date: "2024-01-05", Capacity: 3}, false},
		{"zero capacity means default", GeneratePlanInput{Date: "2024-01-05"}, false},
		{"max capacity", GeneratePlanInput{Date: "2024-01-05", Capacity: 50}, false},
		{"capacity over limit", GeneratePlanInput{Date: "2024-01-05", Capacity: 51}, true},
		{"negative capacity", GeneratePlanInput{Date: "2024-01-05", Capacity: -1}, true},
		{"empty date", GeneratePlanInput{}, true},
		{"bad date format", GeneratePlanInput{Date: "Jan 5 2024"}, true},
		{"impossible date", GeneratePlanInput{Date: "2024-02-30"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error does not unwrap to ErrValidation: %v", err)
			}
		})
	}
}

func TestCompleteTopicInput_Validate(t *testing.T) {
	valid := CompleteTopicInput{
		PlanID:         uuid.New(),
		TopicID:        uuid.New(),
		CorrectAnswers: 8,
		Date:           "2024-01-05",
	}

	tests := []struct {
		name   string
		mutate func(i *CompleteTopicInput)
		fields []string
	}{
		{"valid", func(i *CompleteTopicInput) {}, nil},
		{"zero answers is a real score", func(i *CompleteTopicInput) { i.CorrectAnswers = 0 }, nil},
		{"full score", func(i *CompleteTopicInput) { i.CorrectAnswers = 10 }, nil},
		{"missing plan", func(i *CompleteTopicInput) { i.PlanID = uuid.Nil }, []string{"plan_id"}},
		{"missing topic", func(i *CompleteTopicInput) { i.TopicID = uuid.Nil }, []string{"topic_id"}},
		{"answers over quiz length", func(i *CompleteTopicInput) { i.CorrectAnswers = 11 }, []string{"correct_answers"}},
		{"negative answers", func(i *CompleteTopicInput) { i.CorrectAnswers = -1 }, []string{"correct_answers"}},
		{"oversized note", func(i *CompleteTopicInput) { i.Note = strings.Repeat("x", 2001) }, []string{"note"}},
		{"bad date", func(i *CompleteTopicInput) { i.Date = "2024/01/05" }, []string{"date"}},
		{
			"all errors collected",
			func(i *CompleteTopicInput) {
				i.PlanID = uuid.Nil
				i.TopicID = uuid.Nil
				i.CorrectAnswers = 99
				i.Date = ""
			},
			[]string{"plan_id", "topic_id", "correct_answers", "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := input.Validate()

			if len(tt.fields) == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			got := make(map[string]bool, len(vErr.Errors))
			for _, fe := range vErr.Errors {
				got[fe.Field] = true
			}
			for _, field := range tt.fields {
				if !got[field] {
					t.Errorf("missing error for field %q in %v", field, vErr.Errors)
				}
			}
			if len(vErr.Errors) != len(tt.fields) {
				t.Errorf("got %d field errors, want %d: %v", len(vErr.Errors), len(tt.fields), vErr.Errors)
			}
		})
	}
}

func TestUncompleteTopicInput_Validate(t *testing.T) {
	valid := UncompleteTopicInput{PlanID: uuid.New(), TopicID: uuid.New()}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := UncompleteTopicInput{}
	err := missing.Validate()
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Errors) != 2 {
		t.Errorf("Validate() = %v, want two field errors", err)
	}
}
