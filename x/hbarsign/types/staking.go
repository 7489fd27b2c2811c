package types

// IdentifyUpdateType classifies an account update by exclusion. Any field
// outside staking makes it Generic, as does an update that touches no
// staking field at all. Otherwise it is Stake, or Unstake when the target is
// the unstake sentinel.
func IdentifyUpdateType(b *CryptoUpdateBody) UpdateType {
	if b.HasKey ||
		b.ProxyAccountID != nil ||
		(b.ProxyFraction != nil && *b.ProxyFraction != 0) ||
		b.SendRecordThreshold != nil ||
		b.ReceiveRecordThreshold != nil ||
		b.AutoRenewPeriod != nil ||
		b.ExpirationTime != nil ||
		b.ReceiverSigRequired != nil ||
		b.HasMemo ||
		b.MaxAutomaticTokenAssociations != nil {
		return UpdateGeneric
	}

	if !b.StakedID.IsSet() && b.DeclineReward == nil {
		return UpdateGeneric
	}

	if b.StakedID.IsUnstake() {
		return UpdateUnstake
	}
	return UpdateStake
}
