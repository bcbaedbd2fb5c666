// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrDateFormat reports a source date that does not match the expected
// Korean date pattern.
var ErrDateFormat = errors.New("malformed date")

// optionBoilerplate is the site boilerplate embedded in the option field of
// items whose explanation has not been written yet.
const optionBoilerplate = "해설이 아직 작성되지 않았습니다.해설을 알고 계시다면 오른쪽 해설추가 기능을 이용하여 해설을 작성하여 다른분들과 함께 해설을 나누었으면 합니다.로그인 후 오류 신고 및 해설 작성 하시면 포인트가 제공됩니다.[포인트 모으기 및 사용법]"

// pointsBoilerplate leaks into answer cells on the same items.
const pointsBoilerplate = "[포인트 모으기 및 사용법]"

// explanationMarker prefixes explanation cells scraped with their heading.
const explanationMarker = "<문제 해설>"

const (
	sourceDateLayout = "2006년01월02일"
	outputDateLayout = "2006-01-02"
)

var (
	enumerantSplit  = regexp.MustCompile(`\d+\.\n`)
	firstDigits     = regexp.MustCompile(`\d+`)
	answerEnumerant = strings.NewReplacer(
		"1. ", "", "2. ", "", "3. ", "", "4. ", "",
		pointsBoilerplate, "",
	)
)

// NormalizeAnswer strips leading enumerants and boilerplate from a stated
// answer, then trims and lowercases it for matching against parsed options.
func NormalizeAnswer(raw string) string {
	return strings.ToLower(strings.TrimSpace(answerEnumerant.Replace(raw)))
}

// ParseOptions splits the single delimited option field into ordered option
// texts. Enumerant markers of the form "<digits>.\n" delimit the options;
// segments are trimmed and lowercased, and empty segments are dropped.
func ParseOptions(raw string) []string {
	cleaned := strings.ReplaceAll(raw, optionBoilerplate, "")
	var options []string
	for _, seg := range enumerantSplit.Split(cleaned, -1) {
		seg = strings.ToLower(strings.TrimSpace(seg))
		if seg != "" {
			options = append(options, seg)
		}
	}
	return options
}

// NormalizeExplanation strips the scraped heading marker when present.
func NormalizeExplanation(raw string) string {
	if strings.Contains(raw, explanationMarker) {
		return strings.TrimSpace(strings.ReplaceAll(raw, explanationMarker, ""))
	}
	return raw
}

// ParseRate converts a percentage string such as "82%" to a ratio in [0, 1]
// by taking the first run of digits. ok is false when no digits are found,
// in which case the rate defaults to 0.
func ParseRate(raw string) (rate float64, ok bool) {
	m := firstDigits.FindString(raw)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return float64(n) / 100, true
}

// ConvertDate reformats a date from "YYYY년MM월DD일" to "YYYY-MM-DD".
func ConvertDate(raw string) (string, error) {
	parsed, err := time.Parse(sourceDateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q does not match %s", ErrDateFormat, raw, sourceDateLayout)
	}
	return parsed.Format(outputDateLayout), nil
}
