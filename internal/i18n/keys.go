// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Variation axes
	KeyVariationCreated   = "variation.created"
	KeyVariationUpdated   = "variation.updated"
	KeyVariationDeleted   = "variation.deleted"
	KeyVariationNotFound  = "variation.not_found"
	KeyVariationInUse     = "variation.in_use"
	KeyVariationExhausted = "variation.values_exhausted"

	// Variation items
	KeyVariationItemCreated        = "variation_item.created"
	KeyVariationItemUpdated        = "variation_item.updated"
	KeyVariationItemDeleted        = "variation_item.deleted"
	KeyVariationItemNotFound       = "variation_item.not_found"
	KeyVariationItemDuplicateValue = "variation_item.duplicate_value"

	// Products
	KeyProductCreated          = "product.created"
	KeyProductUpdated          = "product.updated"
	KeyProductDeleted          = "product.deleted"
	KeyProductNotFound         = "product.not_found"
	KeyProductVariationSet     = "product.variation_set"
	KeyProductVariationCleared = "product.variation_cleared"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"

	// Addon lists
	KeyAddonListCreated  = "addon_list.created"
	KeyAddonListUpdated  = "addon_list.updated"
	KeyAddonListDeleted  = "addon_list.deleted"
	KeyAddonListNotFound = "addon_list.not_found"

	// Showcase
	KeyShowcaseAdded    = "showcase.added"
	KeyShowcaseRemoved  = "showcase.removed"
	KeyShowcaseNotFound = "showcase.not_found"

	// Profile
	KeyProfileUpdated  = "profile.updated"
	KeyProfileNotFound = "profile.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
