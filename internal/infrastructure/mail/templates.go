package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type welcomeData struct {
	ShopName     string
	DashboardURL string
	Year         int
}

type otpData struct {
	ShopName     string
	SpacedOTP    string
	ValidMinutes int
}

type resetData struct {
	ShopName     string
	ResetURL     string
	ValidMinutes int
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// spaceDigits separa los dígitos del OTP para que se lean mejor: "123456" -> "1 2 3 4 5 6".
func spaceDigits(otp string) string {
	return strings.Join(strings.Split(otp, ""), " ")
}

func minutes(d time.Duration) int {
	return int(d / time.Minute)
}
