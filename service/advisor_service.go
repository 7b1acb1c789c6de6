package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"credit-estimator/domain"
)

// AdvisorService turns an estimate into a short plain-language note
// about what to do next. When an OpenAI key is configured it asks the
// model for the note; otherwise it falls back to a deterministic
// summary. The engine results never depend on this service.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService() *AdvisorService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AdvisorService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateEstimateNote builds the advisor note for one estimate.
func (s *AdvisorService) GenerateEstimateNote(
	input domain.TaxCreditInput,
	results domain.TaxCreditResults,
) string {
	eligible, followUps := summarizeStatuses(results)

	if !s.enabled {
		return fallbackNote(results, eligible, followUps)
	}

	prompt := fmt.Sprintf(`A Colorado household just used a tax credit screening tool. Summarize their result and what to do next.

RESULT:
- Estimated total benefit from credits they appear to qualify for: $%.0f
- Credits they appear to qualify for: %s
- Credits that need follow-up before they can be confirmed: %s
- Filing status: %s, Colorado residency: %s, number of children: %d

INSTRUCTIONS:
1. Open with the total estimated benefit.
2. If any credits need follow-up, say plainly which answers to double-check (residency, relationship, or ID documents for a child).
3. Remind them these are simplified estimates, not tax advice, and that they claim the credits by filing state and federal returns.
4. Be encouraging but concrete. 3-4 sentences, plain language, no jargon.`,
		results.TotalEstimatedBenefit,
		listOrNone(eligible),
		listOrNone(followUps),
		input.FilingStatus, input.ColoradoResidency, len(input.Children))

	note, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling advisor service: %v", err)
		return fallbackNote(results, eligible, followUps)
	}

	return note
}

func (s *AdvisorService) callLLM(prompt string) (string, error) {
	reqBody := chatRequest{
		Model: "gpt-4o-mini",
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a benefits navigator helping Colorado families understand tax credit screening results. You write short, warm, concrete notes in plain language. You never give legal or tax advice, you always remind people the amounts are estimates, and you point them toward filing their state and federal returns to actually claim the credits.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 250,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no response from advisor model")
	}

	return parsed.Choices[0].Message.Content, nil
}

// summarizeStatuses splits the six credits into those the filer appears
// to qualify for and those needing follow-up.
func summarizeStatuses(results domain.TaxCreditResults) (eligible, followUps []string) {
	credits := []struct {
		name   string
		result domain.CreditResult
	}{
		{"Colorado Child Tax Credit", results.ColoradoCTC},
		{"Colorado Family Affordability Tax Credit", results.ColoradoFATC},
		{"Colorado Earned Income Tax Credit", results.ColoradoEITC},
		{"Colorado Care Worker Credit", results.ColoradoCareWorker},
		{"Federal Child Tax Credit", results.FederalCTC},
		{"Federal Earned Income Tax Credit", results.FederalEITC},
	}

	for _, credit := range credits {
		switch credit.result.Status {
		case domain.StatusEligible:
			eligible = append(eligible, credit.name)
		case domain.StatusMaybe:
			followUps = append(followUps, credit.name)
		}
	}
	return eligible, followUps
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func fallbackNote(results domain.TaxCreditResults, eligible, followUps []string) string {
	switch {
	case len(eligible) > 0 && len(followUps) > 0:
		return fmt.Sprintf("Based on your answers, you appear to qualify for %d credit(s) worth an estimated $%.0f in total, and %d more could apply once you confirm a few answers. Double-check the follow-up items listed with each credit, then claim the credits by filing your state and federal tax returns. These are simplified estimates, not tax advice.",
			len(eligible), results.TotalEstimatedBenefit, len(followUps))
	case len(eligible) > 0:
		return fmt.Sprintf("Based on your answers, you appear to qualify for %d credit(s) worth an estimated $%.0f in total. You claim them by filing your state and federal tax returns. These are simplified estimates, not tax advice.",
			len(eligible), results.TotalEstimatedBenefit)
	case len(followUps) > 0:
		return fmt.Sprintf("You could qualify for %d credit(s), but a few of your answers need follow-up first. Review the items listed with each credit and run the estimate again once you are sure. These are simplified estimates, not tax advice.",
			len(followUps))
	default:
		return "Based on your answers, you do not appear to qualify for these credits this year. Your situation can change, so it is worth checking again next tax season. These are simplified estimates, not tax advice."
	}
}
