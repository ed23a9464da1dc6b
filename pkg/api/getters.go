package api

// GetBillId getters let interceptors read the target bill of a request
// without knowing its concrete type.

func (x *GetBillRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *DeleteBillRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *AddParticipantRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *RenameParticipantRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *RemoveParticipantRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *AddItemRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *UpdateItemRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *RemoveItemRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *SetAssignmentRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *SetPolicyRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *ImportReceiptRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *SettleRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}
