package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type adFixture struct {
	env        *testEnv
	client     *models.User
	talentUser *models.User
	talent     *models.Talent
	request    *models.Request
	payment    *models.Payment
}

func newAdFixture(t *testing.T) *adFixture {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, talent := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)
	payment := createSuccessfulPayment(t, env.db, client.ID, request.ID, "ref-ad-001")
	return &adFixture{env: env, client: client, talentUser: talentUser, talent: talent, request: request, payment: payment}
}

func (f *adFixture) createRequest() *dto.CreateAdRequest {
	return &dto.CreateAdRequest{
		RequestID:   f.request.ID,
		PaymentID:   f.payment.ID,
		Title:       "New soap, new you",
		Description: "30 second spot",
		Category:    "tv-commercial",
	}
}

func TestCreateAdClaimsPayment(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), []dto.UploadedFile{
		{URL: "/files/ads/media/spot.mp4", StorageID: "ads/media/spot.mp4", ContentType: "video/mp4"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ArconStatusPending, ad.ArconStatus)
	assert.Equal(t, models.PublishStatusPendingArcon, ad.PublishStatus)
	assert.NotNil(t, ad.ArconSubmissionDate)
	assert.Equal(t, f.talentUser.ID, ad.TalentUserID)
	require.Len(t, ad.MediaFiles, 1)
	assert.Equal(t, "video", ad.MediaFiles[0].Type)

	var payment models.Payment
	require.NoError(t, f.env.db.First(&payment, "id = ?", f.payment.ID).Error)
	require.NotNil(t, payment.AdID)
	assert.Equal(t, ad.ID, *payment.AdID)

	var client models.Client
	require.NoError(t, f.env.db.First(&client, "user_id = ?", f.client.ID).Error)
	assert.Equal(t, 1, client.TotalAdsSubmitted)
}

func TestCreateAdPaymentUsableOnce(t *testing.T) {
	f := newAdFixture(t)

	first, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	_, err = f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	assert.ErrorIs(t, err, apperrors.ErrPaymentAlreadyUsed)

	// The first ad keeps its claim.
	var payment models.Payment
	require.NoError(t, f.env.db.First(&payment, "id = ?", f.payment.ID).Error)
	require.NotNil(t, payment.AdID)
	assert.Equal(t, first.ID, *payment.AdID)
}

func TestCreateAdPreconditions(t *testing.T) {
	f := newAdFixture(t)

	t.Run("payment must be successful", func(t *testing.T) {
		pending := &models.Payment{
			ClientUserID: f.client.ID, RequestID: &f.request.ID,
			Amount: 1000, Currency: "NGN", Gateway: "paystack",
			Reference: "ref-pending", Status: models.PaymentStatusPending,
		}
		require.NoError(t, f.env.db.Create(pending).Error)

		req := f.createRequest()
		req.PaymentID = pending.ID
		_, err := f.env.services.AdService.Create(f.client.ID, req, nil)
		assert.ErrorIs(t, err, apperrors.ErrPaymentNotSuccessful)
	})

	t.Run("unknown category", func(t *testing.T) {
		req := f.createRequest()
		req.Category = "skywriting"
		_, err := f.env.services.AdService.Create(f.client.ID, req, nil)
		require.Error(t, err)
	})

	t.Run("request must belong to the caller", func(t *testing.T) {
		other := createClientUser(t, f.env.db, "other@example.com")
		_, err := f.env.services.AdService.Create(other.ID, f.createRequest(), nil)
		require.Error(t, err)
	})
}

func TestArconReviewApproves(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	reviewed, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID:     ad.ID,
		Decision: "approved",
		Notes:    "Complies with the code",
	}, "reviewer@arcon.test")
	require.NoError(t, err)
	assert.Equal(t, models.ArconStatusApproved, reviewed.ArconStatus)
	assert.Equal(t, models.PublishStatusApproved, reviewed.PublishStatus)
	assert.NotNil(t, reviewed.PublishDate)
	assert.Equal(t, "reviewer@arcon.test", reviewed.ArconReviewedBy)
	assert.NotNil(t, reviewed.ArconReviewDate)
}

func TestArconReviewLatestDecisionWins(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	_, err = f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "rejected", RejectionReason: "Misleading claim",
	}, "first@arcon.test")
	require.NoError(t, err)

	reviewed, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "approved",
	}, "second@arcon.test")
	require.NoError(t, err)
	assert.Equal(t, models.ArconStatusApproved, reviewed.ArconStatus)
	assert.Empty(t, reviewed.ArconRejectionReason)
	assert.Equal(t, "second@arcon.test", reviewed.ArconReviewedBy)

	// Both decisions stay on the history trail.
	var fresh models.Ad
	require.NoError(t, f.env.db.First(&fresh, "id = ?", ad.ID).Error)
	history := fresh.GetArconReviews()
	require.Len(t, history, 2)
	assert.Equal(t, "rejected", history[0].Decision)
	assert.Equal(t, "approved", history[1].Decision)
}

func TestArconReviewRejectionNeedsReason(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	_, err = f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "rejected",
	}, "reviewer@arcon.test")
	assert.ErrorIs(t, err, apperrors.ErrRejectionReasonRequired)

	reviewed, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "rejected", RejectionReason: "Prohibited product",
	}, "reviewer@arcon.test")
	require.NoError(t, err)
	assert.Equal(t, models.ArconStatusRejected, reviewed.ArconStatus)
	assert.Equal(t, models.PublishStatusRejected, reviewed.PublishStatus)
	assert.Nil(t, reviewed.PublishDate)
	assert.Equal(t, "Prohibited product", reviewed.ArconRejectionReason)
}

func TestArconReviewUnderReview(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	reviewed, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "under-review", Notes: "Escalated to the committee",
	}, "reviewer@arcon.test")
	require.NoError(t, err)
	assert.Equal(t, models.ArconStatusUnderReview, reviewed.ArconStatus)
	assert.Equal(t, models.PublishStatusPendingArcon, reviewed.PublishStatus)
}

func TestArconReviewLeavesPublicationAlone(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	approved, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "approved",
	}, "reviewer@arcon.test")
	require.NoError(t, err)
	require.NotNil(t, approved.PublishDate)

	// Pulling a live ad back under review moves only the regulator status.
	reviewed, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "under-review", Notes: "Complaint received",
	}, "reviewer@arcon.test")
	require.NoError(t, err)
	assert.Equal(t, models.ArconStatusUnderReview, reviewed.ArconStatus)
	assert.Equal(t, models.PublishStatusApproved, reviewed.PublishStatus)
	require.NotNil(t, reviewed.PublishDate)

	// A later rejection flips publication but keeps the original publish date.
	rejected, err := f.env.services.AdService.Review(&dto.ArconReviewRequest{
		AdID: ad.ID, Decision: "rejected", RejectionReason: "Complaint upheld",
	}, "reviewer@arcon.test")
	require.NoError(t, err)
	assert.Equal(t, models.PublishStatusRejected, rejected.PublishStatus)
	assert.NotNil(t, rejected.PublishDate)
}

func TestAdDocumentsSetAuditFlags(t *testing.T) {
	f := newAdFixture(t)
	require.NoError(t, f.env.db.Model(&models.Talent{}).Where("id = ?", f.talent.ID).
		Update("nin_document_url", "/files/talents/nin/doc.pdf").Error)

	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	docs, err := f.env.services.AdService.GetDocuments(ad.ID, "nin")
	require.NoError(t, err)
	assert.Equal(t, []string{"/files/talents/nin/doc.pdf"}, docs.URLs)
	assert.Equal(t, f.talent.ID, docs.TalentID)

	var fresh models.Ad
	require.NoError(t, f.env.db.First(&fresh, "id = ?", ad.ID).Error)
	assert.True(t, fresh.ArconDownloadedNIN)
	assert.False(t, fresh.ArconDownloadedPhotos)

	_, err = f.env.services.AdService.GetDocuments(ad.ID, "photos")
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotAvailable)
}

func TestAdListings(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	forClient, _, err := f.env.services.AdService.ListForClient(f.client.ID, &dto.AdListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, forClient, 1)

	forTalent, _, err := f.env.services.AdService.ListForTalent(f.talentUser.ID, &dto.AdListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, forTalent, 1)

	queue, _, err := f.env.services.AdService.ListForArcon(&dto.AdListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, ad.ID, queue[0].ID)

	_, err = f.env.services.AdService.Review(&dto.ArconReviewRequest{AdID: ad.ID, Decision: "approved"}, "r@arcon.test")
	require.NoError(t, err)

	// The default regulator queue only holds pending submissions.
	queue, _, err = f.env.services.AdService.ListForArcon(&dto.AdListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, queue, 0)

	all, stats, _, err := f.env.services.AdService.ListAll(&dto.AdListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(0), stats.Pending)
}

func TestAdVisibility(t *testing.T) {
	f := newAdFixture(t)
	ad, err := f.env.services.AdService.Create(f.client.ID, f.createRequest(), nil)
	require.NoError(t, err)

	_, err = f.env.services.AdService.GetByID(ad.ID, f.client.ID, models.UserRoleClient)
	assert.NoError(t, err)

	_, err = f.env.services.AdService.GetByID(ad.ID, f.talentUser.ID, models.UserRoleTalent)
	assert.NoError(t, err)

	_, err = f.env.services.AdService.GetByID(ad.ID, "stranger", models.UserRoleClient)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	_, err = f.env.services.AdService.GetByID(ad.ID, "stranger", models.UserRoleArcon)
	assert.NoError(t, err)
}
