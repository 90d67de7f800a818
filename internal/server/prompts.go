package server

import (
	"encoding/json"
	"fmt"
	"strings"
)

const personaPrompt = "You are Anaira, an empathetic AI companion for FertilityNest, " +
	"a fertility support platform. You provide emotional support, cycle insights, " +
	"and evidence-based information to people on their fertility journey. " +
	"Always be warm, non-judgmental, and sensitive. Never give medical diagnoses; " +
	"encourage users to consult their healthcare provider for medical concerns."

// buildChatSystemPrompt folds the caller-provided context into the
// persona so the model answers with the user's situation in view.
func buildChatSystemPrompt(ctx chatContext) string {
	journey := strings.TrimSpace(ctx.JourneyType)
	if journey == "" {
		journey = "fertility"
	}
	stage := strings.TrimSpace(ctx.CurrentStage)
	if stage == "" {
		stage = "unknown"
	}

	var b strings.Builder
	b.WriteString(personaPrompt)
	b.WriteString("\n\nUser context:")
	fmt.Fprintf(&b, "\n- Journey type: %s", journey)
	fmt.Fprintf(&b, "\n- Current stage: %s", stage)
	if ctx.CycleDay > 0 {
		fmt.Fprintf(&b, "\n- They are on day %d of their cycle.", ctx.CycleDay)
	}
	if len(ctx.RecentSymptoms) > 0 {
		fmt.Fprintf(&b, "\n- Recent symptoms: %s", strings.Join(ctx.RecentSymptoms, ", "))
	}
	if len(ctx.Medications) > 0 {
		fmt.Fprintf(&b, "\n- Current medications: %s", strings.Join(ctx.Medications, ", "))
	}
	return b.String()
}

// buildInsightsPrompt asks for a short narrative over the user's
// tracked data. Sections the caller omitted are rendered as empty
// lists so the model does not invent data for them.
func buildInsightsPrompt(data map[string]any) string {
	cycles := marshalSection(data["cycles"])
	symptoms := marshalSection(data["symptoms"])
	medications := marshalSection(data["medications"])

	return fmt.Sprintf(`Based on the following fertility tracking data, generate personalized insights and gentle suggestions.

Cycle data: %s
Symptom data: %s
Medication data: %s

Provide 2-3 supportive, evidence-informed observations in plain language. Do not diagnose. Remind the user to discuss anything concerning with their healthcare provider.`,
		cycles, symptoms, medications)
}

func marshalSection(value any) string {
	if value == nil {
		return "[]"
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}
