package assistant

import "fmt"

// connectionRequestPrompt asks for a short LinkedIn connection request. The
// 300-character cap matches LinkedIn's limit for connection notes.
func connectionRequestPrompt(name, aboutSection string) string {
	return fmt.Sprintf(`You are an expert at writing short, personalized LinkedIn connection requests.
The user wants to connect with %s. If there's an About section, mention it.
The message must be under 300 characters total.

About section: %s

Write a concise, friendly LinkedIn connection request referencing their background.
Ensure it's under 300 characters.`, name, aboutSection)
}

func jobInquiryPrompt(name, aboutSection, jobPosting string) string {
	return fmt.Sprintf(`You are an expert at writing short, personalized LinkedIn connection requests.
The user has already applied to a job at the person's company and wants to connect with %s.

Requirements:
- Must remain under 300 characters total.
- Mention %s's background (from the About section) if available.
- State that the user has already applied for the job.
- Politely ask if they'd be open to a brief conversation.

About section: %s
Job posting: %s

Write a concise, friendly LinkedIn connection request under 300 characters.`, name, name, aboutSection, jobPosting)
}

func resumeOptimizationPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert in resume optimization and improving ATS compatibility.
The user has provided their current resume and a job description.
Provide clear, concise, and impactful suggestions to improve the resume.
Focus on:
- Identifying key keywords, phrases, and requirements from the job description.
- Recommending how to naturally incorporate these into the existing resume.
- Suggesting where existing projects, experiences, or skills can be reworded, emphasized, or reordered.
Do not invent any new experiences, skills, or projects.

Resume:
%s

Job Description:
%s

Provide your suggestions:`, resumeText, jobDescription)
}

// followUpMarker prefixes generator output that asks for more context
// instead of producing a cover letter.
const followUpMarker = "FOLLOW-UP:"

func coverLetterInitialPrompt(resumeText, jobDescription, portfolioURL string) string {
	return fmt.Sprintf(`You are an expert cover letter writer. Given the resume and job description below, decide whether all necessary context for writing a personalized cover letter is provided.
Necessary context includes:
- Why the user is interested in this company/role.
- The user's tone preference (e.g., professional, friendly, passionate).
- Specific projects or achievements to emphasize.

If sufficient context is provided, output the cover letter in plain text (max 1 page) that includes the portfolio link: %s.
If any critical context is missing, output exactly: "FOLLOW-UP:" followed by a JSON array of follow-up questions.
Do not include any extra text.

Resume:
%s

Job Description:
%s

Respond as described.`, portfolioURL, resumeText, jobDescription)
}

func coverLetterFinalPrompt(resumeText, jobDescription, followUpAnswers, portfolioURL string) string {
	return fmt.Sprintf(`You are an expert cover letter writer. Using the resume, job description, and additional context provided below,
generate a personalized, engaging cover letter (max 1 page) that:
- Highlights relevant skills, achievements, and projects.
- Aligns with the company's mission, values, and goals.
- Showcases why the user is excited about the role.
- Includes the portfolio link: %s.
- Reflects the user's personality and tone based on the additional context.

Resume:
%s

Job Description:
%s

Additional Context (follow-up answers):
%s

Generate the cover letter accordingly.`, portfolioURL, resumeText, jobDescription, followUpAnswers)
}

// defaultFollowUpQuestions is the fallback when the generator signals
// FOLLOW-UP but its question array cannot be parsed.
var defaultFollowUpQuestions = []string{
	"What draws you to this company or role personally?",
	"Are there any projects from your resume you'd like to emphasize more?",
	"What tone do you prefer: professional, friendly, or passionate?",
	"Are there any achievements or skills you'd like highlighted more?",
}
