package models

import (
	"encoding/json"
	"testing"
)

func TestSituationValid(t *testing.T) {
	tests := []struct {
		name      string
		situation Situation
		want      bool
	}{
		{
			name:      "presencial",
			situation: SituationPresencial,
			want:      true,
		},
		{
			name:      "online",
			situation: SituationOnline,
			want:      true,
		},
		{
			name:      "adaptación",
			situation: SituationAdaptacion,
			want:      true,
		},
		{
			name:      "inactivo",
			situation: SituationInactivo,
			want:      true,
		},
		{
			name:      "empty",
			situation: Situation(""),
			want:      false,
		},
		{
			name:      "unknown value",
			situation: Situation("Egresado"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.situation.Valid(); got != tt.want {
				t.Errorf("Situation(%q).Valid() = %v, want %v", tt.situation, got, tt.want)
			}
		})
	}
}

func TestActivityTypeValid(t *testing.T) {
	tests := []struct {
		name         string
		activityType ActivityType
		want         bool
	}{
		{
			name:         "efeméride",
			activityType: ActivityEfemeride,
			want:         true,
		},
		{
			name:         "trabajo práctico",
			activityType: ActivityTrabajoPractico,
			want:         true,
		},
		{
			name:         "unknown value",
			activityType: ActivityType("Feriado"),
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.activityType.Valid(); got != tt.want {
				t.Errorf("ActivityType(%q).Valid() = %v, want %v", tt.activityType, got, tt.want)
			}
		})
	}
}

func TestTallerAndDivisionValid(t *testing.T) {
	if !Taller3.Valid() || !Taller4.Valid() {
		t.Error("known taller values should be valid")
	}
	if Taller("Taller 5").Valid() {
		t.Error("Taller 5 should not be valid")
	}
	if !DivisionA.Valid() || !DivisionB.Valid() {
		t.Error("known divisions should be valid")
	}
	if Division("C").Valid() {
		t.Error("division C should not be valid")
	}
}

func TestStudentJSONFieldNames(t *testing.T) {
	student := Student{
		ID:        "s1",
		CourseID:  "c1",
		FirstName: "Juan",
		LastName:  "Pérez",
		Situation: SituationPresencial,
	}

	data, err := json.Marshal(student)
	if err != nil {
		t.Fatalf("marshal student: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal student: %v", err)
	}

	for _, key := range []string{"id", "courseId", "firstName", "lastName", "situation"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("serialized student missing field %q", key)
		}
	}
}

func TestGradeJSONFieldNames(t *testing.T) {
	grade := Grade{StudentID: "s1", EvaluationID: "e1", Score: 85}

	data, err := json.Marshal(grade)
	if err != nil {
		t.Fatalf("marshal grade: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal grade: %v", err)
	}

	for _, key := range []string{"studentId", "evaluationId", "score"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("serialized grade missing field %q", key)
		}
	}
	if _, ok := fields["id"]; ok {
		t.Error("grade must not have an independent id field")
	}
}

func TestSeedActivities(t *testing.T) {
	counter := 0
	newID := func() string {
		counter++
		return "a" + string(rune('0'+counter%10))
	}

	activities := SeedActivities(2024, newID)
	if len(activities) != 17 {
		t.Fatalf("expected 17 seeded efemérides, got %d", len(activities))
	}

	for _, a := range activities {
		if a.Type != ActivityEfemeride {
			t.Errorf("seed activity %q has type %q, want Efeméride", a.Title, a.Type)
		}
		if a.ID == "" {
			t.Errorf("seed activity %q has no id", a.Title)
		}
	}
}
