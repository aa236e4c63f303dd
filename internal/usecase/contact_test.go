//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"delacream-park/internal/infra/mail"
	mailmock "delacream-park/internal/infra/mail/mock"
	"delacream-park/internal/infra/notify"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

type ContactUseCaseTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockMailer *mailmock.MockMailer
	uc         usecase.ContactUseCase
}

func (s *ContactUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMailer = mailmock.NewMockMailer(s.mockCtrl)

	notifier := notify.New(s.mockMailer, config.NewTestConfig().SMTP)
	s.uc = usecase.NewContactUseCase(notifier)
}

func (s *ContactUseCaseTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ContactUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContactUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ContactUseCaseTestSuite))
}

func contactMessage() usecase.ContactMessage {
	return usecase.ContactMessage{
		FirstName: "Grace",
		LastName:  "Akinyi",
		Email:     "grace@example.com",
		Phone:     "0700000003",
		Subject:   "Office space",
		Message:   "Do you have units available from July?",
	}
}

func (s *ContactUseCaseTestSuite) TestSend() {
	s.Run("notifies the business and acknowledges the sender", func() {
		var sent []mail.Message
		s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mail.Message) error {
				sent = append(sent, msg)
				return nil
			}).Times(2)

		s.Require().NoError(s.uc.Send(context.Background(), contactMessage()))
		s.Require().Len(sent, 2)

		business := sent[0]
		s.Equal("info@delacream.co.ke", business.To)
		s.Equal("Contact Form: Office space", business.Subject)
		s.Equal("grace@example.com", business.ReplyTo)
		s.Contains(business.HTML, "Grace Akinyi")

		ack := sent[1]
		s.Equal("grace@example.com", ack.To)
		s.Equal("Thank you for contacting De La Cream Business Park", ack.Subject)
		s.Empty(ack.ReplyTo)
	})

	s.Run("a failed business notification aborts the submission", func() {
		s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(errs.New("smtp down"))

		err := s.uc.Send(context.Background(), contactMessage())
		s.ErrorIs(err, errs.ErrMailDelivery)
	})

	s.Run("a failed acknowledgement also fails the submission", func() {
		first := s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(errs.New("smtp down")).After(first)

		err := s.uc.Send(context.Background(), contactMessage())
		s.ErrorIs(err, errs.ErrMailDelivery)
	})
}

func (s *ContactUseCaseTestSuite) TestInfo() {
	info := s.uc.Info(context.Background())

	s.Equal("0111717542", info.Phone)
	s.Equal("info@delacream.co.ke", info.Email)
	s.Equal("Busia", info.Address.City)
	s.Equal("Kenya", info.Address.Country)
	s.Len(info.Departments, 3)
	s.Equal("leasing@delacream.co.ke", info.Departments["leasing"].Email)
	s.Equal("24/7", info.BusinessHours["reception"])
}
