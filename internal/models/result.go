package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MediaType    string `json:"media_type"`
}

type ApplyRequest struct {
	JobID          string `json:"job_id"`
	DocumentID     string `json:"document_id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
}

type ApplyResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ApplicationResultResponse struct {
	ID           string             `json:"id"`
	JobID        string             `json:"job_id"`
	Status       string             `json:"status"`
	Result       *ApplicationResult `json:"result,omitempty"`
	ErrorMessage *string            `json:"error_message,omitempty"`
}

type ApplicationResult struct {
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons"`
	MatchedSkills []string `json:"matched_skills"`
}

// MatchResult is the scored outcome of one resume against one job.
type MatchResult struct {
	JobID         string   `json:"jobId"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	Reasons       []string `json:"reasons,omitempty"`
}

type RecommendResponse struct {
	ResumeSkills []string      `json:"resumeSkills"`
	BestMatches  []MatchResult `json:"bestMatches"`
	Message      string        `json:"message,omitempty"`
}

type ScoreResponse struct {
	JobID         string   `json:"job_id"`
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons"`
	MatchedSkills []string `json:"matched_skills"`
}
