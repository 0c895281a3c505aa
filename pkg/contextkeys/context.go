package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB в context
const DBContextKey = contextKey("db")

// CompanyContextKey - ключ для аутентифицированной компании (*models.Company)
const CompanyContextKey = contextKey("company")

// CompanyIDContextKey - ключ для ID аутентифицированной компании (uint)
const CompanyIDContextKey = contextKey("companyID")
