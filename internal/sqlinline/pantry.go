package sqlinline

const QSelectPantryByUser = `--sql b9dae230-319f-49bd-b9b1-b74d72b10a3a
select item_id, user_id, name, quantity::float8, unit, created_at, updated_at
from pantry_items
where user_id = $1::bigint
order by item_id;
`

const QInsertPantryItem = `--sql ceee94a9-fe4e-4976-968c-1180c82e6e4c
insert into pantry_items (user_id, name, quantity, unit, created_at, updated_at)
values ($1::bigint, $2::text, $3::numeric, $4::text, now(), now())
returning item_id, created_at, updated_at;
`

const QDeletePantryByUser = `--sql a2fa976a-db9d-4bab-80ce-217d4a2b14d6
delete from pantry_items where user_id = $1::bigint;
`

const QDeletePantryItem = `--sql ab094d4c-f1e1-45d5-a41b-5f23478200ac
delete from pantry_items where item_id = $1::bigint;
`
