package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/pkg/logger"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func newTestNotifier(s sender) *SMTPNotifier {
	return &SMTPNotifier{dialer: s, from: "no-reply@stockmate.test", fromName: "StockMate", dashboardURL: "https://app.test/dashboard", log: logger.Nop()}
}

func TestSpaceDigits(t *testing.T) {
	assert.Equal(t, "1 2 3 4 5 6", spaceDigits("123456"))
}

func TestRender_OTP(t *testing.T) {
	body, err := render("otp.html", otpData{ShopName: "Ferretería <Sol>", SpacedOTP: spaceDigits("482913"), ValidMinutes: 10})
	require.NoError(t, err)
	assert.Contains(t, body, "4 8 2 9 1 3")
	assert.Contains(t, body, "10 minutos")
	assert.Contains(t, body, "Ferretería &lt;Sol&gt;", "el nombre se escapa")
}

func TestRender_Reset(t *testing.T) {
	url := "https://app.test/reset-password/abc123"
	body, err := render("reset.html", resetData{ShopName: "Sol", ResetURL: url, ValidMinutes: 15})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(body, url))
	assert.Contains(t, body, "15 minutos")
}

func TestSMTPNotifier_SendOTP(t *testing.T) {
	s := &fakeSender{}
	n := newTestNotifier(s)

	require.NoError(t, n.SendOTP(context.Background(), "a@b.co", "Sol", "123456"))
	require.Len(t, s.sent, 1)
	assert.Equal(t, []string{"a@b.co"}, s.sent[0].GetHeader("To"))
	assert.Contains(t, s.sent[0].GetHeader("Subject")[0], "123456")
}

func TestSMTPNotifier_FallaDeEnvio(t *testing.T) {
	n := newTestNotifier(&fakeSender{err: errors.New("535 auth failed")})

	err := n.SendWelcome(context.Background(), "a@b.co", "Sol")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailure)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = newTestNotifier(&fakeSender{}).SendPasswordReset(ctx, "a@b.co", "Sol", "https://x")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
}
