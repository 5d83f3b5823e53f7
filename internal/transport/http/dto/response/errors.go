package response

// Failure messages reused across handlers. The exact wording is part of the
// API: clients match on these strings.
const (
	MsgSculptureNotFound   = "Sculpture not found"
	MsgCategoryNotFound    = "Category not found"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgNoToken             = "Access denied. No token provided."
	MsgInvalidToken        = "Invalid or expired token"
	MsgLoginFieldsNeeded   = "Username and password are required"
	MsgUsernameExists      = "Username already exists"
	MsgContactFieldsNeeded = "Customer name and mobile number are required"
	MsgInvalidRequest      = "Invalid request format"
	MsgInternalError       = "Internal server error"
	MsgCategoryInUse       = "Category has active sculptures and cannot be deleted"
	MsgInvalidStatus       = "Invalid status value"
)
