package tutor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/creativedak/tutor1/core"
)

var (
	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to your name or email"
)

func init() {
	core.Validate.RegisterStructValidation(tutorStructValidation, NewTutor{})
	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// tutorStructValidation does struct level validation on the NewTutor struct.
func tutorStructValidation(sl validator.StructLevel) {
	if nt, ok := sl.Current().Interface().(NewTutor); ok {
		validatePassword(nt.Password, nt.Name, nt.Email, sl)
	}
}

// validatePassword applies the password policy to the provided password:
// - minLen: 8
// - no whitespace
// - no all numeric
// - no user attrs similarity
func validatePassword(pwd, name, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	pwdLen := len(pwd)
	if pwdLen == 0 {
		return // `required` covers this
	}
	if pwdLen < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == pwdLen {
		reportErr(pwdNotAllNumTag)
		return
	}

	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	if getRatio(pwd, name) >= pwdMaxSim || getRatio(pwd, email) >= pwdMaxSim {
		reportErr(pwdAttrSimTag)
	}
}
