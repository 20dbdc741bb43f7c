package main

import (
	"fmt"
	"os"
	"path/filepath"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/utils"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, value interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// readUpload loads a file from disk for a multipart upload. An empty path
// yields nil.
func readUpload(path string) (*requests.FileUpload, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	filename := filepath.Base(path)
	return &requests.FileUpload{
		Filename:    filename,
		ContentType: utils.ContentTypeForFile(filename),
		Content:     content,
	}, nil
}

// parseActivityOffer reads "activity_id:experience_years:price[:description]".
func parseActivityOffer(raw string) (requests.ProfessionalActivityOffer, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 3 {
		return requests.ProfessionalActivityOffer{}, fmt.Errorf("activity %q must look like id:years:price[:description]", raw)
	}

	activityID, err := parseID(parts[0])
	if err != nil {
		return requests.ProfessionalActivityOffer{}, err
	}
	years, err := strconv.Atoi(parts[1])
	if err != nil {
		return requests.ProfessionalActivityOffer{}, fmt.Errorf("invalid experience years %q", parts[1])
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return requests.ProfessionalActivityOffer{}, fmt.Errorf("invalid price %q", parts[2])
	}

	offer := requests.ProfessionalActivityOffer{
		ActivityID:      activityID,
		ExperienceYears: years,
		Price:           price,
	}
	if len(parts) == 4 {
		offer.Description = parts[3]
	}
	return offer, nil
}
