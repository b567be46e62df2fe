package model

import "time"

// Answer records a candidate's response to a single question. At most one
// answer exists per question per session; resubmissions are rejected, never
// overwritten.
type Answer struct {
	QuestionID  int       `json:"questionId" bson:"questionId"`
	RawInput    string    `json:"rawInput" bson:"rawInput"`
	Transcript  string    `json:"transcript" bson:"transcript"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}

// QAPair pairs a bank question with the candidate's transcript, in bank order.
// It is the unit handed to the evaluator and returned by the transcript view.
type QAPair struct {
	Question   Question `json:"question" bson:"question"`
	Transcript string   `json:"transcript" bson:"transcript"`
}
