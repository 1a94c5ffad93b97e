// Package export serializes a company list to CSV with a fixed column set.
// Quoting follows RFC 4180 (encoding/csv); list-valued fields are flattened
// with ", " as the join separator. Both are part of the output contract.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/batchlens/batchlens/models"
)

// Columns is the fixed CSV header, in output order.
var Columns = []string{
	"Name",
	"Tagline",
	"Description",
	"Category",
	"Website",
	"Founding Year",
	"Founders",
	"Funding Round",
	"Funding Amount",
	"Employees",
	"Tags",
	"LinkedIn",
	"Twitter",
	"GitHub",
}

// listSeparator joins list-valued fields (founders, tags) into one cell.
const listSeparator = ", "

// WriteCSV writes a header row plus one row per company. Zero companies
// produce a header-only document, never an error.
func WriteCSV(w io.Writer, companies []models.Company) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range companies {
		if err := cw.Write(row(&companies[i])); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", companies[i].ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func row(c *models.Company) []string {
	founders := make([]string, 0, len(c.Founders))
	for _, f := range c.Founders {
		founders = append(founders, f.Name)
	}

	fundingRound, fundingAmount := "", ""
	if c.Funding != nil {
		fundingRound = c.Funding.Round
		fundingAmount = c.Funding.Amount
	}

	employees := ""
	if n := c.EmployeeCount(); n > 0 {
		employees = fmt.Sprintf("%d", n)
	}

	foundingYear := ""
	if c.FoundingYear > 0 {
		foundingYear = fmt.Sprintf("%d", c.FoundingYear)
	}

	linkedin, twitter, github := "", "", ""
	if c.Links != nil {
		linkedin = c.Links.LinkedIn
		twitter = c.Links.Twitter
		github = c.Links.GitHub
	}

	return []string{
		c.Name,
		c.Tagline,
		c.Description,
		c.Category,
		c.Website,
		foundingYear,
		strings.Join(founders, listSeparator),
		fundingRound,
		fundingAmount,
		employees,
		strings.Join(c.Tags, listSeparator),
		linkedin,
		twitter,
		github,
	}
}
