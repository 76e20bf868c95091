package service

import "github.com/m04kA/barbershop-booking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
