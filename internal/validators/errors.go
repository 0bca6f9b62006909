package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBaseDir            = errors.New("BASE_DIR is required")
	ErrEmptyLanguageCode       = errors.New("LANGUAGE_CODE is required")
	ErrMissingLanguages        = errors.New("LANGUAGES is required")
	ErrInvalidLanguageCode     = errors.New("invalid language code")
	ErrUnknownLanguage         = errors.New("language has no entry in ALL_LANGUAGES_DICT")
	ErrEmptyDefaultFileStorage = errors.New("DEFAULT_FILE_STORAGE is required")
	ErrMissingList             = errors.New("registration list is missing")
)
