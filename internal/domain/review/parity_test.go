package review

import (
	"testing"

	"github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/models"
)

func TestVisibleBeforeParity(t *testing.T) {
	providerReview := &models.Review{RaterRole: "provider", Rating: 4.5, Comment: "pontual"}

	// Só o prestador avaliou: nenhum dos lados vê conteúdo
	pair := Pair{Provider: providerReview}

	clientView := Visible(pair, booking.RoleClient)
	if clientView.YourReviewDone {
		t.Error("client view: your_review_done must be false")
	}
	if !clientView.CounterpartReviewDone {
		t.Error("client view: counterpart_review_done must be true")
	}
	if clientView.Mine != nil || clientView.Theirs != nil {
		t.Error("client view: content leaked before parity")
	}

	providerView := Visible(pair, booking.RoleProvider)
	if !providerView.YourReviewDone || providerView.CounterpartReviewDone {
		t.Errorf("provider view flags wrong: %+v", providerView)
	}
	if providerView.Mine != nil || providerView.Theirs != nil {
		t.Error("provider view: content leaked before parity, even to the author")
	}
}

func TestVisibleAfterParity(t *testing.T) {
	clientReview := &models.Review{RaterRole: "client", Rating: 5, Comment: "excelente"}
	providerReview := &models.Review{RaterRole: "provider", Rating: 4.5, Comment: "pontual"}

	pair := Pair{Client: clientReview, Provider: providerReview}

	clientView := Visible(pair, booking.RoleClient)
	if !clientView.YourReviewDone || !clientView.CounterpartReviewDone {
		t.Errorf("client view flags wrong: %+v", clientView)
	}
	if clientView.Mine != clientReview || clientView.Theirs != providerReview {
		t.Error("client view: mine/theirs mismatched")
	}

	providerView := Visible(pair, booking.RoleProvider)
	if providerView.Mine != providerReview || providerView.Theirs != clientReview {
		t.Error("provider view: mine/theirs mismatched")
	}
}

func TestVisibleNoReviews(t *testing.T) {
	view := Visible(Pair{}, booking.RoleClient)
	if view.YourReviewDone || view.CounterpartReviewDone || view.Mine != nil || view.Theirs != nil {
		t.Errorf("empty pair must expose nothing: %+v", view)
	}
}
