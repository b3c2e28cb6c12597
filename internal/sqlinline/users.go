package sqlinline

const QInsertUser = `--sql 86028ef2-bc23-4aaa-82ae-34a90830944e
insert into users (name, height, weight, age, sex, allergies, dislikes, cooking_skill_level, equipments, created_at, updated_at)
values ($1::text, $2::numeric, $3::numeric, $4::int, nullif($5::text, ''), $6::text[], $7::text[], nullif($8::text, ''), $9::text[], now(), now())
returning user_id, created_at, updated_at;
`

const QSelectUserByID = `--sql 231c58c6-fa36-4cbb-b187-120a8c8fc612
select user_id, name, height::float8, weight::float8, age, coalesce(sex, ''), allergies, dislikes,
       coalesce(cooking_skill_level, ''), equipments, created_at, updated_at
from users
where user_id = $1::bigint;
`

const QUpdateUser = `--sql 441228ed-7e87-4ddc-b6ab-0ba139e13bf4
update users set
    name = $2::text,
    height = $3::numeric,
    weight = $4::numeric,
    age = $5::int,
    sex = nullif($6::text, ''),
    allergies = $7::text[],
    dislikes = $8::text[],
    cooking_skill_level = nullif($9::text, ''),
    equipments = $10::text[],
    updated_at = now()
where user_id = $1::bigint
returning updated_at;
`

const QDeleteUser = `--sql ed505cdb-0238-43bd-af79-fc8f7e06e042
delete from users where user_id = $1::bigint;
`

const QSelectUserTarget = `--sql 83c1e62e-a410-427d-ad64-ab94b0736102
select user_id, calories::float8, protein::float8, carbs::float8, fat::float8, fiber::float8, created_at, updated_at
from user_targets
where user_id = $1::bigint;
`

const QUpsertUserTarget = `--sql 684cd958-64a1-4abe-9202-36ce967cfdb2
insert into user_targets (user_id, calories, protein, carbs, fat, fiber, created_at, updated_at)
values ($1::bigint, $2::numeric, $3::numeric, $4::numeric, $5::numeric, $6::numeric, now(), now())
on conflict (user_id) do update set
    calories = excluded.calories,
    protein = excluded.protein,
    carbs = excluded.carbs,
    fat = excluded.fat,
    fiber = excluded.fiber,
    updated_at = now()
returning created_at, updated_at;
`
