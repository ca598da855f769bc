package dto

import "time"

type ReviewDTO struct {
	RaterRole string    `json:"rater_role"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// VisibleReviewsDTO: antes da paridade só os booleanos saem
type VisibleReviewsDTO struct {
	YourReviewDone        bool               `json:"your_review_done"`
	CounterpartReviewDone bool               `json:"counterpart_review_done"`
	Reviews               *ReviewContentsDTO `json:"reviews,omitempty"`
}

type ReviewContentsDTO struct {
	Mine   ReviewDTO `json:"mine"`
	Theirs ReviewDTO `json:"theirs"`
}
