package youtube

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseISODuration converts the catalog's ISO-8601 duration text (for
// example "PT1H2M30S" or "P1DT3H") into whole seconds. Fractional seconds
// are not produced by the catalog and are rejected.
func ParseISODuration(text string) (int, error) {
	if !strings.HasPrefix(text, "P") {
		return 0, fmt.Errorf("invalid ISO-8601 duration [%s]", text)
	}

	rest := text[1:]
	if rest == "" {
		return 0, fmt.Errorf("invalid ISO-8601 duration [%s]", text)
	}

	datePart := rest
	timePart := ""
	if idx := strings.IndexByte(rest, 'T'); idx >= 0 {
		datePart = rest[:idx]
		timePart = rest[idx+1:]
		if timePart == "" {
			return 0, fmt.Errorf("invalid ISO-8601 duration [%s]", text)
		}
	}

	total := 0

	dateUnits := map[byte]int{'D': 86400, 'W': 604800}
	seconds, err := parseDurationPart(datePart, dateUnits)
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration [%s]: %w", text, err)
	}
	total += seconds

	timeUnits := map[byte]int{'H': 3600, 'M': 60, 'S': 1}
	seconds, err = parseDurationPart(timePart, timeUnits)
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration [%s]: %w", text, err)
	}
	total += seconds

	return total, nil
}

func parseDurationPart(part string, units map[byte]int) (int, error) {
	total := 0
	digits := ""

	for i := 0; i < len(part); i++ {
		c := part[i]
		if c >= '0' && c <= '9' {
			digits += string(c)
			continue
		}

		unit, ok := units[c]
		if !ok || digits == "" {
			return 0, fmt.Errorf("unexpected character [%c]", c)
		}

		value, err := strconv.Atoi(digits)
		if err != nil {
			return 0, err
		}
		total += value * unit
		digits = ""
	}

	if digits != "" {
		return 0, fmt.Errorf("trailing digits without unit")
	}

	return total, nil
}
