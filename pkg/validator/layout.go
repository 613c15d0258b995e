package validator

import "time"

func isLayout(value, layout string) bool {
	_, err := time.Parse(layout, value)
	return err == nil
}
