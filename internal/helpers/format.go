package helpers

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Prices are whole rupees; the storefront never deals in paise.
const (
	TaxRate               = 0.18
	FreeShippingThreshold = 999
	StandardShippingCost  = 99
)

var istZone = loadISTZone()

func loadISTZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// FormatPrice renders a rupee amount with the currency symbol, e.g. ₹1,23,456.
func FormatPrice(amount int64) string {
	if amount < 0 {
		return "-₹" + FormatPriceNumber(-amount)
	}
	return "₹" + FormatPriceNumber(amount)
}

// FormatPriceNumber applies Indian digit grouping: the last three digits
// form one group, the rest group by two.
func FormatPriceNumber(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		groups := []string{tail}
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",")
	}
	if neg {
		s = "-" + s
	}
	return s
}

// FormatPhone renders a 10-digit Indian mobile number as +91 XXXXX XXXXX.
// Anything else is returned unchanged.
func FormatPhone(phone string) string {
	clean := stripNonDigits(phone)
	if len(clean) == 10 {
		return "+91 " + clean[:5] + " " + clean[5:]
	}
	return phone
}

func FormatDate(t time.Time) string {
	return t.In(istZone).Format("02 Jan 2006")
}

func FormatDateTime(t time.Time) string {
	return t.In(istZone).Format("02 Jan 2006, 03:04 PM")
}

// RelativeTime reports how long ago t was relative to now, e.g. "2 hours ago".
func RelativeTime(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	intervals := []struct {
		label   string
		seconds int64
	}{
		{"year", 31536000},
		{"month", 2592000},
		{"week", 604800},
		{"day", 86400},
		{"hour", 3600},
		{"minute", 60},
		{"second", 1},
	}
	for _, iv := range intervals {
		if count := seconds / iv.seconds; count >= 1 {
			if count > 1 {
				return strconv.FormatInt(count, 10) + " " + iv.label + "s ago"
			}
			return "1 " + iv.label + " ago"
		}
	}
	return "just now"
}

const randomChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func RandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = randomChars[rand.Intn(len(randomChars))]
	}
	return string(b)
}

// NewOrderID builds a human-readable order reference: TL prefix, the last
// six digits of the current unix-millis timestamp, and three random digits.
func NewOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	ts = ts[len(ts)-6:]
	suffix := strconv.Itoa(rand.Intn(1000))
	for len(suffix) < 3 {
		suffix = "0" + suffix
	}
	return "TL" + ts + suffix
}

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparateRe = regexp.MustCompile(`[\s_-]+`)
)

func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSeparateRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + strings.ToLower(text[1:])
}

func CapitalizeWords(text string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range text {
		if startOfWord && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
		} else {
			b.WriteRune(r)
		}
		startOfWord = r == ' ' || r == '\t' || r == '\n' || r == '-'
	}
	return b.String()
}

func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return strings.TrimSpace(text[:maxLength]) + "..."
}

// CalculateTax returns GST on a rupee amount, rounded to the nearest rupee.
func CalculateTax(amount int64) int64 {
	return int64(math.Round(float64(amount) * TaxRate))
}

// CalculateShipping is a flat fee waived at the free-shipping threshold.
func CalculateShipping(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingCost
}

func DiscountPercent(originalPrice, salePrice int64) int64 {
	if originalPrice <= salePrice || originalPrice == 0 {
		return 0
	}
	return int64(math.Round(float64(originalPrice-salePrice) / float64(originalPrice) * 100))
}
