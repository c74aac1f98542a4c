package openai

import (
	"fmt"
	"strings"

	"github.com/kaitongg-bit/course-pilot/core"
)

const summarySystemPrompt = "You are a concise, practical career advisor. " +
	"You give direct, personalized advice without marketing jargon."

const summaryPromptTemplate = `Based on the user profile and course information below, generate a personalized course recommendation (max 60 words).

STRICT RULES:
1. Do NOT start with "Unlock", "Discover", "Elevate", "Take your...", or "This course...".
2. Do NOT use marketing fluff or clichés.
3. Start directly with WHY this course fits the user's specific goals or skills.
4. Be conversational but professional.
5. Output ONLY the recommendation text.

User Goals: %s
User Skills: %s
Course: %s
Description: %s

Recommendation:`

// buildSummaryPrompt fills the summary template for a course and profile.
func buildSummaryPrompt(course *core.Course, profile *core.Profile) string {
	goals := profile.Goal
	if goals == "" {
		goals = "Not specified"
	}
	skills := strings.Join(profile.Skills, ", ")
	if skills == "" {
		skills = "Not specified"
	}
	return fmt.Sprintf(summaryPromptTemplate, goals, skills, course.Name, course.Description)
}

const auditSystemPrompt = "You are a content moderator. Return only valid JSON."

const auditPromptTemplate = `You are a content moderator. Your ONLY job is to block profanity, hate speech, and personal attacks.
You must PASS all other reviews, whether they are positive, negative, or neutral.

Review to audit: "%s"

Respond with ONLY a JSON object in this exact format:
{"Audit Status": "Pass" or "Fail", "Reason": "brief reason"}`

// buildAuditPrompt fills the audit template for a review.
func buildAuditPrompt(reviewText string) string {
	return fmt.Sprintf(auditPromptTemplate, reviewText)
}
