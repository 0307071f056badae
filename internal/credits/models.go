package credits

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CarbonCredit is an issued, immutable retirement record: once written it is
// never updated or deleted. ProjectName is denormalized for display; the
// authoritative project record is resolved by ProjectID.
type CarbonCredit struct {
	ID           string    `bson:"id" json:"id"`
	ProjectID    string    `bson:"projectId" json:"projectId"`
	ProjectName  string    `bson:"projectName" json:"projectName"`
	Buyer        string    `bson:"buyer" json:"buyer"`
	BuyerID      string    `bson:"buyerId" json:"buyerId"`
	PurchaseDate time.Time `bson:"purchaseDate" json:"purchaseDate"`
	TonnesCO2    int       `bson:"tonnesCO2" json:"tonnesCO2"`
}

// NewCreditID builds the human-readable credit token: the upper-cased
// project id plus the trailing six digits of the purchase time in
// milliseconds, e.g. "BCC-PROJECT-1-482913".
func NewCreditID(projectID string, at time.Time) string {
	suffix := strconv.FormatInt(at.UnixMilli(), 10)
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("BCC-%s-%s", strings.ToUpper(projectID), suffix)
}
