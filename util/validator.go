package util

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Validate runs govalidator struct validation and joins the field errors.
func Validate(dst interface{}) error {
	_, err := govalidator.ValidateStruct(dst)
	if err == nil {
		return nil
	}

	errs := govalidator.ErrorsByField(err)
	messages := make([]string, 0, len(errs))
	for field, message := range errs {
		messages = append(messages, fmt.Sprintf("%s:%s", field, message))
	}
	sort.Strings(messages)

	return errors.New(strings.Join(messages, ", "))
}

func init() {
	govalidator.TagMap["webhook_status"] = govalidator.Validator(func(status string) bool {
		return status == "active" || status == "inactive"
	})

	govalidator.TagMap["http_url"] = govalidator.Validator(func(u string) bool {
		return govalidator.IsRequestURL(u) &&
			(strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://"))
	})
}
