package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const UnprocessableMsgCollection = "unprocessable_messages"

type UnprocessableMessageDocument struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	MessageBody string             `bson:"message_body"`
	// Receipt is the delivery tag, only unique within one channel
	Receipt string `bson:"receipt"`
}

func NewUnprocessableMessageDocument(messageBody, receipt string) *UnprocessableMessageDocument {
	return &UnprocessableMessageDocument{
		MessageBody: messageBody,
		Receipt:     receipt,
	}
}
