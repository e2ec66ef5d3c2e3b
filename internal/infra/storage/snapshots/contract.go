package snapshots

import "github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/dbutil"

// DBExecutor интерфейс для работы с БД
type DBExecutor = dbutil.DBExecutor
