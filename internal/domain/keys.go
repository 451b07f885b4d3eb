package domain

type CtxKey string

const (
	KeyApplicant   CtxKey = "Applicant"
	KeyApplicantID CtxKey = "ApplicantID"
)
