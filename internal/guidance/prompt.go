package guidance

import (
	"fmt"
	"strconv"
)

// BuildPrompt renders the advisory prompt for a request. The structure is
// fixed so that responses stay comparable across models.
func BuildPrompt(req Request) string {
	location := strconv.FormatFloat(req.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(req.Lon, 'f', -1, 64)

	return fmt.Sprintf(`EMERGENCY NAVIGATION PROTOCOL v2.1
**Situation**: %s
**Location**: %s
**Disaster Type**: %s

Generate response with:
1. 3 prioritized safety actions
2. Potential route hazards
3. Local emergency contacts
4. Verification status

Format as clear text with emojis, no JSON needed`, req.Description, location, req.DisasterType)
}
