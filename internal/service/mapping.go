package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/rs/zerolog/log"
)

// MediaPrefix is the URL path under which blob keys are served.
const MediaPrefix = "/media/"

func mediaURL(key string) string {
	if key == "" {
		return ""
	}
	return MediaPrefix + key
}

func mediaURLPtr(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	u := mediaURL(*key)
	return &u
}

func copyInto(to, from interface{}) {
	if err := copier.Copy(to, from); err != nil {
		log.Error().Err(err).Msgf("Failed to map %T to %T", from, to)
	}
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copyInto(&resp, q)
	resp.QuestionImageKey = mediaURLPtr(q.QuestionImageKey)
	return resp
}

func toAnswerResponse(a *model.Answer) dto.AnswerResponse {
	var resp dto.AnswerResponse
	copyInto(&resp, a)
	resp.UploadedImage = mediaURL(a.UploadedImage)
	resp.Question = toQuestionResponse(&a.Question)
	return resp
}

func toAnswerUploadResponse(a *model.Answer) dto.AnswerUploadResponse {
	var resp dto.AnswerUploadResponse
	copyInto(&resp, a)
	resp.UploadedImage = mediaURL(a.UploadedImage)
	return resp
}
