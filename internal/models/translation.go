package models

import "time"

// Translation is what every translation provider returns.
type Translation struct {
	Text          string
	Pronunciation string
	Source        string
	Target        string
}

type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type TranslateResult struct {
	Original      string `json:"original"`
	Translated    string `json:"translated"`
	Pronunciation string `json:"pronunciation"`
	SrcLang       string `json:"src_lang"`
	DestLang      string `json:"dest_lang"`
}

type TranslationRecord struct {
	ID             string    `json:"id" bson:"_id" db:"id"`
	UserID         string    `json:"user_id" bson:"user_id" db:"user_id"`
	SourceText     string    `json:"source_text" bson:"source_text" db:"source_text"`
	TranslatedText string    `json:"translated_text" bson:"translated_text" db:"translated_text"`
	SourceLang     string    `json:"source_lang" bson:"source_lang" db:"source_lang"`
	TargetLang     string    `json:"target_lang" bson:"target_lang" db:"target_lang"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp" db:"created_at"`
}

type GoogleResponse []any

type TranslationResponse struct {
	SourceText      string `json:"source-text"`
	DestinationText string `json:"destination-text"`
	Pronunciation   struct {
		SourceTextPhonetic      string `json:"source-text-phonetic"`
		DestinationTextPhonetic string `json:"destination-text-phonetic"`
	} `json:"pronunciation"`
	SourceLanguage string `json:"source-language"`
}

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`           // 0.0 - 1.0
		ResponseStatus  int     `json:"responseStatus"`  // 200, 403, 429...
		ResponseDetails string  `json:"responseDetails"` // "Daily request limit reached"
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
		Source      string `json:"source"`
	} `json:"matches"`
}
