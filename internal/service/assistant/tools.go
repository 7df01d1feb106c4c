package assistant

import (
	"context"

	"github.com/atharvakapadnis/agentic-tasks/toolkit"
	"github.com/atharvakapadnis/agentic-tasks/util/getsafe"
)

// RegisterTools publishes every workflow as a named tool. Specs mirror the
// workflow signatures: a parameter is required exactly when the workflow
// has no fallback for it.
func (s *Service) RegisterTools(reg *toolkit.Registry) {
	reg.Register(toolkit.ToolSpec{
		Name: "linkedin_connection_request",
		Description: "Generates a short LinkedIn connection request (<300 characters).\n" +
			"Records the contact when role and company are provided.",
		Params: []toolkit.ParamSpec{
			toolkit.Param("name", toolkit.TypeString, "Name of the person to connect with"),
			toolkit.OptionalParam("role", toolkit.TypeString, "", "Their role, used for the contact record"),
			toolkit.OptionalParam("company", toolkit.TypeString, "", "Their company, used for the contact record"),
			toolkit.OptionalParam("about_section", toolkit.TypeString, "", "Their LinkedIn About section"),
		},
		Returns: toolkit.TypeObject,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		message, personID, err := s.ConnectionRequest(
			ctx,
			getsafe.String(args, "name"),
			getsafe.String(args, "role"),
			getsafe.String(args, "company"),
			getsafe.String(args, "about_section"),
		)
		if err != nil {
			return nil, err
		}

		result := map[string]any{"message": message, "length": len(message)}
		if personID > 0 {
			result["person_id"] = personID
		}
		return result, nil
	})

	reg.Register(toolkit.ToolSpec{
		Name: "linkedin_job_inquiry",
		Description: "Generates a short LinkedIn job inquiry request (<300 characters).\n" +
			"Mentions that the user has already applied; records the inquiry when both ids are provided.",
		Params: []toolkit.ParamSpec{
			toolkit.Param("name", toolkit.TypeString, "Name of the person to contact"),
			toolkit.OptionalParam("about_section", toolkit.TypeString, "", "Their LinkedIn About section"),
			toolkit.OptionalParam("job_posting", toolkit.TypeString, "", "The job posting text"),
			toolkit.OptionalParam("person_id", toolkit.TypeInt, 0, "Existing contact id to link the inquiry to"),
			toolkit.OptionalParam("job_application_id", toolkit.TypeInt, 0, "Job application id to link the inquiry to"),
		},
		Returns: toolkit.TypeObject,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		message, inquiryID, err := s.JobInquiry(
			ctx,
			getsafe.String(args, "name"),
			getsafe.String(args, "about_section"),
			getsafe.String(args, "job_posting"),
			getsafe.Int(args, "person_id"),
			getsafe.Int(args, "job_application_id"),
		)
		if err != nil {
			return nil, err
		}

		result := map[string]any{"message": message, "length": len(message)}
		if inquiryID > 0 {
			result["job_inquiry_id"] = inquiryID
		}
		return result, nil
	})

	reg.Register(toolkit.ToolSpec{
		Name: "resume_optimization",
		Description: "Generates resume optimization suggestions for a job description.\n" +
			"Identifies keywords and recommends rewording without inventing new experience.",
		Params: []toolkit.ParamSpec{
			toolkit.Param("resume_text", toolkit.TypeString, "Plain text of the current resume"),
			toolkit.Param("job_description", toolkit.TypeString, "The target job description"),
			toolkit.OptionalParam("job_application_id", toolkit.TypeInt, 0, "Job application id to attach the suggestions to"),
		},
		Returns: toolkit.TypeObject,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		suggestions, suggestionID, err := s.ResumeOptimization(
			ctx,
			getsafe.String(args, "resume_text"),
			getsafe.String(args, "job_description"),
			getsafe.Int(args, "job_application_id"),
		)
		if err != nil {
			return nil, err
		}

		result := map[string]any{"suggestions": suggestions}
		if suggestionID > 0 {
			result["resume_suggestion_id"] = suggestionID
		}
		return result, nil
	})

	reg.Register(toolkit.ToolSpec{
		Name: "cover_letter_initial",
		Description: "Writes a cover letter when enough context exists, otherwise returns follow-up questions.\n" +
			"Follow-up responses carry follow_up_needed=true and a questions array.",
		Params: []toolkit.ParamSpec{
			toolkit.Param("resume_text", toolkit.TypeString, "Plain text of the current resume"),
			toolkit.Param("job_description", toolkit.TypeString, "The target job description"),
			toolkit.OptionalParam("job_application_id", toolkit.TypeInt, 0, "Job application id to attach the letter to"),
		},
		Returns: toolkit.TypeObject,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return s.CoverLetterInitial(
			ctx,
			getsafe.String(args, "resume_text"),
			getsafe.String(args, "job_description"),
			getsafe.Int(args, "job_application_id"),
		)
	})

	reg.Register(toolkit.ToolSpec{
		Name:        "cover_letter_final",
		Description: "Writes the final personalized cover letter using follow-up answers as extra context.",
		Params: []toolkit.ParamSpec{
			toolkit.Param("resume_text", toolkit.TypeString, "Plain text of the current resume"),
			toolkit.Param("job_description", toolkit.TypeString, "The target job description"),
			toolkit.Param("follow_up_answers", toolkit.TypeString, "Answers to the follow-up questions"),
			toolkit.OptionalParam("job_application_id", toolkit.TypeInt, 0, "Job application id to attach the letter to"),
		},
		Returns: toolkit.TypeObject,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		letter, letterID, err := s.CoverLetterFinal(
			ctx,
			getsafe.String(args, "resume_text"),
			getsafe.String(args, "job_description"),
			getsafe.String(args, "follow_up_answers"),
			getsafe.Int(args, "job_application_id"),
		)
		if err != nil {
			return nil, err
		}

		result := map[string]any{"cover_letter": letter}
		if letterID > 0 {
			result["cover_letter_id"] = letterID
		}
		return result, nil
	})

	reg.Register(toolkit.ToolSpec{
		Name:        "similar_applications",
		Description: "Finds past job applications with descriptions similar to the given one.",
		Params: []toolkit.ParamSpec{
			toolkit.Param("job_description", toolkit.TypeString, "Job description to compare against"),
			toolkit.OptionalParam("limit", toolkit.TypeInt, 5, "Maximum number of matches"),
		},
		Returns: toolkit.TypeObject,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		matches, err := s.SimilarApplications(
			ctx,
			getsafe.String(args, "job_description"),
			int(getsafe.Int(args, "limit")),
		)
		if err != nil {
			return nil, err
		}
		return map[string]any{"applications": matches}, nil
	})
}
