package models

type VerdictResponse struct {
	Verdict string `json:"verdict"`
}

type DescribeRequest struct {
	Name string `json:"name"`
}

type DescribeResponse struct {
	Suggestion string `json:"suggestion"`
}
