package models

// ItemCreate is the inbound payload for creating a new item.
type ItemCreate struct {
	Name string `json:"name"`
}

// ItemUpdate is the inbound payload for a partial item update.
// Nil fields are left untouched.
type ItemUpdate struct {
	Name *string `json:"name,omitempty"`
}

// KafkaMessage is the inbound payload of the broker endpoint: a plain text
// message published to the given topic. When Topic is empty the producer's
// default topic is used.
type KafkaMessage struct {
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message"`
}

// TaskRequest is the inbound payload of the task-queue endpoint.
// Name selects a registered task handler; Payload is passed to it verbatim.
type TaskRequest struct {
	Name    string `json:"name"`
	Payload string `json:"payload,omitempty"`
}
