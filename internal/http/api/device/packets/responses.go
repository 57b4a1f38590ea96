package packets

type PairCodeResponse struct {
	DeviceUID string `json:"device_uid"`
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

// PairPollResponse carries the device token once pairing completes;
// until then Paired is false and Token is empty.
type PairPollResponse struct {
	Paired bool   `json:"paired"`
	Token  string `json:"token,omitempty"`
}
