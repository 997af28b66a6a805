package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
	"github.com/resumeforge/resumeforge-go/core/validate"
)

// ATSService runs applicant-tracking-system analyses of resumes against job
// postings and manages their optimization suggestions.
type ATSService struct {
	client *Client
}

// CreateScore analyzes a resume against a job posting. Analysis runs
// server-side; the returned score already carries keyword matches and
// optimization suggestions.
func (s *ATSService) CreateScore(ctx context.Context, params ATSScoreParams) (ATSScore, error) {
	if err := validate.Struct(params); err != nil {
		s.client.notifier.Error(err.Error())
		return ATSScore{}, err
	}

	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"ats-scores"},
		Success:     "ATS analysis completed successfully",
		Failure:     "Failed to analyze resume",
	}, func(ctx context.Context) (ATSScore, error) {
		var score ATSScore
		err := s.client.api.Post(ctx, "/ats/scores/", params, &score)
		return score, err
	})
}

// ListScores returns all analyses for the current user.
func (s *ATSService) ListScores(ctx context.Context) ([]ATSScore, error) {
	return cache.Read(ctx, s.client.data, "ats-scores", staleDefault, func(ctx context.Context) ([]ATSScore, error) {
		return apiclient.GetList[ATSScore](ctx, s.client.api, "/ats/scores/")
	})
}

// GetScore returns a single analysis.
func (s *ATSService) GetScore(ctx context.Context, id int) (ATSScore, error) {
	return cache.Read(ctx, s.client.data, cache.Key("ats-score", itoa(id)), staleDefault, func(ctx context.Context) (ATSScore, error) {
		var score ATSScore
		err := s.client.api.Get(ctx, "/ats/scores/"+itoa(id)+"/", &score)
		return score, err
	})
}

// KeywordMatches returns the keyword findings of an analysis.
func (s *ATSService) KeywordMatches(ctx context.Context, scoreID int) ([]KeywordMatch, error) {
	return cache.Read(ctx, s.client.data, cache.Key("keyword-matches", itoa(scoreID)), staleDefault, func(ctx context.Context) ([]KeywordMatch, error) {
		var matches []KeywordMatch
		err := s.client.api.Get(ctx, "/ats/scores/"+itoa(scoreID)+"/keyword_matches/", &matches)
		return matches, err
	})
}

// Suggestions returns the optimization suggestions of an analysis.
func (s *ATSService) Suggestions(ctx context.Context, scoreID int) ([]OptimizationSuggestion, error) {
	return cache.Read(ctx, s.client.data, cache.Key("optimization-suggestions", itoa(scoreID)), staleDefault, func(ctx context.Context) ([]OptimizationSuggestion, error) {
		var suggestions []OptimizationSuggestion
		err := s.client.api.Get(ctx, "/ats/scores/"+itoa(scoreID)+"/optimization_suggestions/", &suggestions)
		return suggestions, err
	})
}

// ApplySuggestion applies one optimization suggestion to the underlying
// resume and returns the re-scored analysis.
func (s *ATSService) ApplySuggestion(ctx context.Context, scoreID, suggestionID int) (ATSScore, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{
			cache.Key("ats-score", itoa(scoreID)),
			cache.Key("optimization-suggestions", itoa(scoreID)),
		},
		Success: "Suggestion applied successfully",
		Failure: "Failed to apply suggestion",
	}, func(ctx context.Context) (ATSScore, error) {
		var score ATSScore
		err := s.client.api.Post(ctx, "/ats/scores/"+itoa(scoreID)+"/apply_suggestion/", map[string]int{
			"suggestion_id": suggestionID,
		}, &score)
		return score, err
	})
}

// JobTitleSynonyms returns the synonym dictionary the analyzer matches job
// titles against. The dictionary changes rarely, so it stays fresh longer
// than other resources.
func (s *ATSService) JobTitleSynonyms(ctx context.Context) ([]JobTitleSynonym, error) {
	return cache.Read(ctx, s.client.data, "job-title-synonyms", staleSynonyms, func(ctx context.Context) ([]JobTitleSynonym, error) {
		return apiclient.GetList[JobTitleSynonym](ctx, s.client.api, "/ats/job-title-synonyms/")
	})
}
