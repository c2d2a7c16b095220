package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GenerationStatus is the tri-state outcome of a generation call.
// Warning means the generator produced a schedule but violated one or
// more constraints; Error means no schedule was produced.
type GenerationStatus string

const (
	GenerationSuccess GenerationStatus = "Success"
	GenerationWarning GenerationStatus = "Warning"
	GenerationError   GenerationStatus = "Error"
)

// GenerateRequest is the contract of the remote schedule generator
type GenerateRequest struct {
	StartDate            string   `json:"startDate"`
	EndDate              string   `json:"endDate"`
	AllowedShiftTypeIDs  []string `json:"AllowedShiftTypeIds"`
	MaxConsecutiveShifts int      `json:"MaxConsecutiveShifts"`
	SchedulePattern      string   `json:"SchedulePattern"`
	MinDaysOffPerWeek    int      `json:"MinDaysOffPerWeek"`
}

// GenerateRetailRequest is the contract of the retail-mode generator
type GenerateRetailRequest struct {
	ScheduleID           string `json:"scheduleId"`
	TotalHours           int    `json:"totalHours"`
	MaxConsecutiveShifts int    `json:"maxConsecutiveShifts"`
	MinDaysOffPerWeek    int    `json:"minDaysOffPerWeek"`
}

// GeneratedShift is one shift returned by the generator
type GeneratedShift struct {
	ShiftTypeID string                     `json:"shiftTypeId"`
	Date        string                     `json:"date"`
	Employees   []UpdateScheduleAssignment `json:"employees"`
}

// GenerateResult is the generator's response envelope
type GenerateResult struct {
	Status   GenerationStatus `json:"status"`
	Shifts   []GeneratedShift `json:"shifts,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// GeneratorClient talks to the external schedule generation service.
// The generation algorithm, its timeouts and its retries live entirely
// on the remote side; the client only reports the outcome.
type GeneratorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeneratorClient(baseURL string, timeout time.Duration) *GeneratorClient {
	return &GeneratorClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate requests a constraint-based schedule for a period
func (c *GeneratorClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	return c.post(ctx, "/schedule-generator/generate", req)
}

// GenerateRetail requests a total-hours-target schedule for an existing schedule
func (c *GeneratorClient) GenerateRetail(ctx context.Context, req *GenerateRetailRequest) (*GenerateResult, error) {
	return c.post(ctx, "/schedules/generate-retail", req)
}

func (c *GeneratorClient) post(ctx context.Context, path string, payload interface{}) (*GenerateResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding generation request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building generation request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error calling schedule generator: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule generator returned status %d", resp.StatusCode)
	}

	var result GenerateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding generation response: %v", err)
	}

	return &result, nil
}
