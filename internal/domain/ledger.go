package domain

const (
	ReasonPointRedemption = "Resgate de brinde"
	ReasonGiftRedemption  = "resgate"
)

// PointAdjustment credits (Delta > 0) or debits (Delta < 0) a participant balance.
type PointAdjustment struct {
	ParticipantID string
	Delta         int
	Reason        string
	AdminID       string
}

func (a *PointAdjustment) IsValid() bool {
	if a.ParticipantID == "" {
		return false
	}
	if a.Delta == 0 {
		return false
	}
	return true
}

type GiftRedemption struct {
	ParticipantID string
	GiftID        uint
	Quantity      int
	AdminID       string
}

func (r *GiftRedemption) IsValid() bool {
	if r.ParticipantID == "" || r.GiftID == 0 {
		return false
	}
	if r.Quantity <= 0 {
		return false
	}
	return true
}

// PointRedemption spends points on behalf of a participant. It always needs an admin.
type PointRedemption struct {
	ParticipantID string
	Points        int
	Reason        string
	AdminID       string
}

func (r *PointRedemption) IsValid() bool {
	return r.ParticipantID != "" && r.Points > 0 && r.AdminID != ""
}

func (r *PointRedemption) Adjustment() PointAdjustment {
	reason := r.Reason
	if reason == "" {
		reason = ReasonPointRedemption
	}

	return PointAdjustment{
		ParticipantID: r.ParticipantID,
		Delta:         -r.Points,
		Reason:        reason,
		AdminID:       r.AdminID,
	}
}
