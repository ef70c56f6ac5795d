package webutil

import (
	"errors"
	"log"
	"log/slog"
	"reflect"
	"strings"

	"smart_vocab/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"term":          "単語",
	"definition":    "意味",
	"memo":          "メモ",
	"mode":          "学習モード",
	"is_correct":    "回答の正誤",
	"response_time": "回答時間",
	"exam_type":     "試験形式",
	"results":       "試験結果",
	"user_answer":   "回答",
	"word_id":       "単語ID",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("oneof", "{0}の値が許可されていません。")
	registerTranslation("gte", "{0}は0以上で指定してください。")
}

// ValidateStruct はリクエストDTOを検証し、失敗時は翻訳済みの AppError を返します
func ValidateStruct(s interface{}, logger *slog.Logger) *model.AppError {
	if logger == nil {
		logger = slog.Default()
	}
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
		return NewValidationErrorResponse(validationErrors)
	}

	logger.Error("Unexpected error during validation", slog.Any("error", err))
	return model.NewAppError("INTERNAL_SERVER_ERROR", "リクエストの検証中にエラーが発生しました。", "", model.ErrInternalServer)
}
